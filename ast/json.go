package ast

import (
	"encoding/json"
)

// The interchange shape of every node is an object with a "type" tag naming
// the variant, followed by the variant's own fields. Child arrays are
// always present, [] when empty.

func nonNil(ns []Node) []Node {
	if ns == nil {
		return []Node{}
	}
	return ns
}

func (n *Text) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    Kind   `json:"type"`
		Content string `json:"content"`
	}{n.Kind(), n.Content})
}

func (n *Paragraph) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type     Kind   `json:"type"`
		Children []Node `json:"children"`
	}{n.Kind(), nonNil(n.Children)})
}

func (n *DocDirective) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type        Kind   `json:"type"`
		Original    string `json:"original"`
		Translated  string `json:"translated"`
		FullContent string `json:"full_content"`
	}{n.Kind(), n.Original, n.Translated, n.FullContent})
}

func (n *CodeBlock) MarshalJSON() ([]byte, error) {
	params := n.Params
	if params == nil {
		params = []Param{}
	}
	return json.Marshal(struct {
		Type     Kind    `json:"type"`
		Language string  `json:"language"`
		Params   []Param `json:"params"`
		Body     string  `json:"content"`
	}{n.Kind(), n.Language, params, n.Body})
}

func (n *Container) MarshalJSON() ([]byte, error) {
	params := n.Params
	if params == nil {
		params = []Param{}
	}
	return json.Marshal(struct {
		Type     Kind    `json:"type"`
		BKind    string  `json:"kind"`
		Weight   int     `json:"weight"`
		Title    string  `json:"title"`
		Params   []Param `json:"params"`
		Children []Node  `json:"children"`
	}{n.Kind(), n.BlockKind, n.Weight, n.Title, params, nonNil(n.Children)})
}

func (n *MetadataBlock) MarshalJSON() ([]byte, error) {
	pairs := n.Pairs
	if pairs == nil {
		pairs = []Pair{}
	}
	return json.Marshal(struct {
		Type  Kind   `json:"type"`
		Pairs []Pair `json:"pairs"`
		Node  Node   `json:"node"`
	}{n.Kind(), pairs, n.Node})
}

func (n *InlineRole) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type     Kind   `json:"type"`
		Role     string `json:"role"`
		Attrs    string `json:"attrs,omitempty"`
		Arg      string `json:"arg"`
		Children []Node `json:"children"`
	}{n.Kind(), n.Role, n.Attrs, n.Arg, nonNil(n.Children)})
}

func (n *DefinitionList) MarshalJSON() ([]byte, error) {
	type item struct {
		Term       string `json:"term"`
		Definition []Node `json:"definition"`
	}
	items := make([]item, len(n.Items))
	for i, it := range n.Items {
		items[i] = item{it.Term, nonNil(it.Definition)}
	}
	return json.Marshal(struct {
		Type  Kind   `json:"type"`
		Items []item `json:"items"`
	}{n.Kind(), items})
}

func (n *Include) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type   Kind   `json:"type"`
		Target string `json:"target"`
	}{n.Kind(), n.Target})
}

func (n *Docstring) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type   Kind   `json:"type"`
		Target string `json:"target"`
	}{n.Kind(), n.Target})
}

func (n *Header) MarshalJSON() ([]byte, error) {
	type content struct {
		Original   string `json:"original"`
		Translated string `json:"translated"`
	}
	return json.Marshal(struct {
		Type    Kind    `json:"type"`
		Level   int     `json:"level"`
		Content content `json:"content"`
	}{n.Kind(), n.Level, content{n.Original, n.Translated}})
}

func (n *DocComment) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type       Kind   `json:"type"`
		Original   string `json:"original"`
		Translated string `json:"translated"`
	}{n.Kind(), n.Original, n.Translated})
}

func (n *CodeLine) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    Kind   `json:"type"`
		Content string `json:"content"`
	}{n.Kind(), n.Content})
}
