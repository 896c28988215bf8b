package termid

// Well-known term identifiers for frequently used ontology roots.
//
// Keeping these as package-level values saves call sites from parsing the
// same CURIEs over and over.
var (
	// HPOAll (HP:0000001) is the root of all terms in the Human Phenotype
	// Ontology.
	HPOAll = TermID{prefix: PrefixHP, value: 1, width: 7}

	// HPOPhenotypicAbnormality (HP:0000118) is the root of the phenotypic
	// abnormality sub-module of the HPO.
	HPOPhenotypicAbnormality = TermID{prefix: PrefixHP, value: 118, width: 7}

	// HPOClinicalModifier (HP:0012823) is the root of the HPO sub-module
	// with terms that qualify phenotypic abnormalities with respect to
	// severity, laterality, age of onset, and other aspects.
	HPOClinicalModifier = TermID{prefix: PrefixHP, value: 12823, width: 7}

	// MAXOMedicalAction (MAXO:0000001) is the root of all terms in the
	// Medical Action Ontology.
	MAXOMedicalAction = TermID{prefix: PrefixMAXO, value: 1, width: 7}

	// GOBiologicalProcess (GO:0008150) is one of the three roots of the
	// Gene Ontology.
	GOBiologicalProcess = TermID{prefix: PrefixGO, value: 8150, width: 7}

	// GOCellularComponent (GO:0005575) is one of the three roots of the
	// Gene Ontology.
	GOCellularComponent = TermID{prefix: PrefixGO, value: 5575, width: 7}

	// GOMolecularFunction (GO:0003674) is one of the three roots of the
	// Gene Ontology.
	GOMolecularFunction = TermID{prefix: PrefixGO, value: 3674, width: 7}

	// OWLThing (owl:Thing) is the universal concept. It is used as the
	// synthetic root when an ontology has more than one root candidate.
	OWLThing = FromPair("owl", "Thing")
)
