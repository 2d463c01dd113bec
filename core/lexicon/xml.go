package lexicon

import (
	"bytes"
	"os"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"

	"github.com/FocuswithJustin/interlinear/core/errors"
)

// Compiled once; the entry set is queried for every load.
var (
	entryExpr = xpath.MustCompile("//entry[@strongs]")
	greekExpr = xpath.MustCompile("greek")
)

// ParseStrongsXML parses the Strong's Greek dictionary XML distribution
// into the identifier-keyed dictionary table. Entries without a usable
// Strong's number are skipped.
func ParseStrongsXML(data []byte) (map[string]DictEntry, error) {
	doc, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, errors.NewParse("XML", "", err.Error())
	}

	dict := make(map[string]DictEntry)
	for _, node := range xmlquery.QuerySelectorAll(doc, entryExpr) {
		num, err := strconv.Atoi(strings.TrimSpace(node.SelectAttr("strongs")))
		if err != nil || num <= 0 {
			continue
		}
		id := "G" + strconv.Itoa(num)

		entry := DictEntry{
			StrongsDef: childText(node, "strongs_def"),
			KJVDef:     strings.TrimPrefix(childText(node, "kjv_def"), ":--"),
			Derivation: childText(node, "strongs_derivation"),
		}
		if greek := xmlquery.QuerySelector(node, greekExpr); greek != nil {
			entry.Lemma = greek.SelectAttr("unicode")
			entry.Translit = greek.SelectAttr("translit")
		}
		dict[id] = entry
	}

	return dict, nil
}

// LoadStrongsXML reads and parses a Strong's XML file.
func LoadStrongsXML(path string) (map[string]DictEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewIO("read", path, err)
	}
	return ParseStrongsXML(data)
}

func childText(node *xmlquery.Node, name string) string {
	child := xmlquery.FindOne(node, name)
	if child == nil {
		return ""
	}
	return strings.TrimSpace(child.InnerText())
}
