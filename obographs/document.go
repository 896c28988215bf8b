// Package obographs loads ontology data from obographs JSON documents, the
// exchange format published for OBO ontologies such as hp.json.
//
// The parser produces the neutral ontology.Data tuple; pair it with
// ontology.Build, or use Loader to do both in one step:
//
//	loader := obographs.NewLoader(nil)
//	hpo, err := loader.LoadFromPath("hp.json")
package obographs

// The wire structs below mirror the obographs GraphDocument model. Only the
// fields the parser reads are declared.

type graphDocument struct {
	Graphs []graphModel `json:"graphs"`
}

type graphModel struct {
	ID    string      `json:"id"`
	Meta  *metaModel  `json:"meta"`
	Nodes []nodeModel `json:"nodes"`
	Edges []edgeModel `json:"edges"`
}

type nodeModel struct {
	ID   string     `json:"id"`
	Lbl  string     `json:"lbl"`
	Type string     `json:"type"`
	Meta *metaModel `json:"meta"`
}

type edgeModel struct {
	Sub  string `json:"sub"`
	Pred string `json:"pred"`
	Obj  string `json:"obj"`
}

type metaModel struct {
	Definition          *definitionModel `json:"definition"`
	Comments            []string         `json:"comments"`
	Synonyms            []synonymModel   `json:"synonyms"`
	Xrefs               []xrefModel      `json:"xrefs"`
	BasicPropertyValues []propertyValue  `json:"basicPropertyValues"`
	Version             string           `json:"version"`
	Deprecated          bool             `json:"deprecated"`
}

type definitionModel struct {
	Val   string   `json:"val"`
	Xrefs []string `json:"xrefs"`
}

type synonymModel struct {
	Pred  string   `json:"pred"`
	Val   string   `json:"val"`
	Xrefs []string `json:"xrefs"`
}

type xrefModel struct {
	Val string `json:"val"`
}

type propertyValue struct {
	Pred string `json:"pred"`
	Val  string `json:"val"`
}
