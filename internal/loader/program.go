package loader

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/octanelang/octanec/internal/ir"
)

// ProgramDoc is the on-disk JSON shape of one source file's bound
// program tree: namespaces, classes/structs/enums, and method bodies.
// A real compiler's binder would build this graph directly in memory;
// here it is read from disk so the core can be driven standalone.
type ProgramDoc struct {
	Namespaces []namespaceDoc `json:"namespaces"`
	Using      []string       `json:"using"`
}

type namespaceDoc struct {
	Name            string      `json:"name"`
	Import          bool        `json:"import"`
	IncludeFilename string      `json:"includeFilename"`
	Classes         []classDoc  `json:"classes"`
	Structs         []structDoc `json:"structs"`
	Enums           []enumDoc   `json:"enums"`
	Methods         []methodDoc `json:"methods"`
}

type classDoc struct {
	Name       string      `json:"name"`
	Base       string      `json:"base"`
	BaseCName  string      `json:"baseCName"`
	Fields     []fieldDoc  `json:"fields"`
	Methods    []methodDoc `json:"methods"`
	Properties []propDoc   `json:"properties"`
	Constants  []constDoc  `json:"constants"`
}

type structDoc struct {
	Name          string      `json:"name"`
	ReferenceType bool        `json:"referenceType"`
	Fields        []fieldDoc  `json:"fields"`
	Methods       []methodDoc `json:"methods"`
}

type enumDoc struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

type typeRefDoc struct {
	TypeName  string `json:"typeName"`
	ArrayType bool   `json:"arrayType"`
}

type fieldDoc struct {
	Name          string          `json:"name"`
	Modifiers     []string        `json:"modifiers"`
	Type          typeRefDoc      `json:"type"`
	Initializer   json.RawMessage `json:"initializer"`
	IsStructField bool            `json:"isStructField"`
	CName         string          `json:"cname"`
}

type propDoc struct {
	Name string            `json:"name"`
	Type typeRefDoc        `json:"type"`
	Get  []json.RawMessage `json:"get"`
	Set  []json.RawMessage `json:"set"`
}

type constDoc struct {
	Name        string          `json:"name"`
	Type        typeRefDoc      `json:"type"`
	Initializer json.RawMessage `json:"initializer"`
}

type paramDoc struct {
	Name     string     `json:"name"`
	Type     typeRefDoc `json:"type"`
	RefOrOut bool       `json:"refOrOut"`
}

type methodDoc struct {
	Name                   string            `json:"name"`
	Modifiers              []string          `json:"modifiers"`
	Params                 []paramDoc        `json:"params"`
	ReturnType             typeRefDoc        `json:"returnType"`
	Body                   []json.RawMessage `json:"body"`
	HasBody                bool              `json:"hasBody"`
	ReturnsModifiedPointer bool              `json:"returnsModifiedPointer"`
	InstanceLast           bool              `json:"instanceLast"`
	IsStructMethod         bool              `json:"isStructMethod"`
}

// Hints carries the information LoadProgram reads from the document but
// cannot resolve into ir pointers on its own, since the referenced
// declaration may live in a namespace assembled from a different source
// file. Wire consumes it after every file in a Context has been loaded.
type Hints struct {
	// BaseNames records, for every Class with a user-defined (non-foreign)
	// base, the unqualified name Wire must resolve into that Class's Base.
	BaseNames map[*ir.Class]string
}

func newHints() *Hints {
	return &Hints{BaseNames: make(map[*ir.Class]string)}
}

// LoadProgram reads and builds an *ir.SourceFile from a JSON program
// document at path, plus the unresolved-name Hints Wire needs to finish
// the job. Type names and base-class names are matched against
// already-loaded declarations by Wire, not here.
func LoadProgram(path string) (*ir.SourceFile, *Hints, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	var doc ProgramDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	hints := newHints()
	sf := &ir.SourceFile{Filename: path, UsingDirectives: doc.Using}
	for _, nd := range doc.Namespaces {
		ns := &ir.Namespace{Name: nd.Name, Import: nd.Import, IncludeFilename: nd.IncludeFilename, Owner: sf}
		for _, cd := range nd.Classes {
			ns.Classes = append(ns.Classes, buildClass(cd, ns, hints))
		}
		for _, sd := range nd.Structs {
			ns.Structs = append(ns.Structs, buildStruct(sd, ns))
		}
		for _, ed := range nd.Enums {
			ns.Enums = append(ns.Enums, buildEnum(ed, ns))
		}
		for _, md := range nd.Methods {
			ns.Methods = append(ns.Methods, buildMethod(md, nil, nil, ns))
		}
		if ns.Name == "" {
			sf.Root = ns
		}
		sf.Namespaces = append(sf.Namespaces, ns)
	}
	return sf, hints, nil
}

func buildClass(cd classDoc, ns *ir.Namespace, hints *Hints) *ir.Class {
	cl := &ir.Class{Name: cd.Name, Namespace: ns, BaseCName: cd.BaseCName}
	for _, fd := range cd.Fields {
		cl.Fields = append(cl.Fields, buildField(fd, cl, nil, ns))
	}
	for _, md := range cd.Methods {
		cl.Methods = append(cl.Methods, buildMethod(md, cl, nil, nil))
	}
	for _, pd := range cd.Properties {
		cl.Properties = append(cl.Properties, buildProperty(pd, cl))
	}
	for _, cst := range cd.Constants {
		cl.Constants = append(cl.Constants, buildConstant(cst))
	}
	if cd.Base != "" {
		hints.BaseNames[cl] = cd.Base
	}
	return cl
}

func buildStruct(sd structDoc, ns *ir.Namespace) *ir.Struct {
	st := &ir.Struct{Name: sd.Name, Namespace: ns, ReferenceType: sd.ReferenceType}
	for _, fd := range sd.Fields {
		fd.IsStructField = true
		st.Fields = append(st.Fields, buildField(fd, nil, st, ns))
	}
	for _, md := range sd.Methods {
		st.Methods = append(st.Methods, buildMethod(md, nil, st, nil))
	}
	return st
}

func buildEnum(ed enumDoc, ns *ir.Namespace) *ir.Enum {
	e := &ir.Enum{Name: ed.Name, Namespace: ns}
	for _, v := range ed.Values {
		e.Values = append(e.Values, &ir.EnumValue{Name: v, Enum: e})
	}
	return e
}

func buildField(fd fieldDoc, cl *ir.Class, st *ir.Struct, ns *ir.Namespace) *ir.Field {
	f := &ir.Field{
		Name:          fd.Name,
		Modifiers:     modifiersFromStrings(fd.Modifiers),
		Class:         cl,
		Struct:        st,
		IsStructField: fd.IsStructField,
		CName:         fd.CName,
	}
	if cl == nil && st == nil {
		f.Namespace = ns
	}
	f.Decl = &ir.VariableDecl{Name: fd.Name, Type: typeRefFromDoc(fd.Type), Initializer: mustDecodeExpr(fd.Initializer)}
	return f
}

func buildProperty(pd propDoc, cl *ir.Class) *ir.Property {
	p := &ir.Property{Name: pd.Name, ReturnType: typeRefFromDoc(pd.Type), Class: cl}
	if len(pd.Get) > 0 {
		p.GetBody = &ir.Block{Statements: decodeStmts(pd.Get)}
	}
	if len(pd.Set) > 0 {
		p.SetBody = &ir.Block{Statements: decodeStmts(pd.Set)}
	}
	return p
}

func buildConstant(cd constDoc) *ir.Constant {
	return &ir.Constant{Decl: &ir.VariableDecl{Name: cd.Name, Type: typeRefFromDoc(cd.Type), Initializer: mustDecodeExpr(cd.Initializer)}}
}

func buildMethod(md methodDoc, cl *ir.Class, st *ir.Struct, ns *ir.Namespace) *ir.Method {
	m := &ir.Method{
		Name:                   md.Name,
		Modifiers:              modifiersFromStrings(md.Modifiers),
		ReturnType:             typeRefFromDoc(md.ReturnType),
		Class:                  cl,
		Struct:                 st,
		Namespace:              ns,
		ReturnsModifiedPointer: md.ReturnsModifiedPointer,
		InstanceLast:           md.InstanceLast,
		IsStructMethod:         md.IsStructMethod,
	}
	for _, pd := range md.Params {
		m.Params = append(m.Params, &ir.FormalParameter{Name: pd.Name, Type: typeRefFromDoc(pd.Type), RefOrOut: pd.RefOrOut})
	}
	if md.HasBody || len(md.Body) > 0 {
		m.Body = &ir.Block{Statements: decodeStmts(md.Body)}
	}
	return m
}

func typeRefFromDoc(d typeRefDoc) *ir.TypeRef {
	return &ir.TypeRef{TypeName: d.TypeName, ArrayType: d.ArrayType}
}

var modifierNames = map[string]ir.Modifier{
	"public": ir.Public, "private": ir.Private, "static": ir.Static,
	"abstract": ir.Abstract, "virtual": ir.Virtual, "override": ir.Override,
}

func modifiersFromStrings(names []string) ir.Modifier {
	var m ir.Modifier
	for _, n := range names {
		m |= modifierNames[n]
	}
	return m
}
