package search

import (
	"encoding/json"

	"go.uber.org/zap"

	"github.com/openvocab/cuisearch/internal/db"
	"github.com/openvocab/cuisearch/internal/domain"
	"github.com/openvocab/cuisearch/internal/domain/search/hit"
)

// conceptDoc is the stored JSON projection of a concept document.
type conceptDoc struct {
	CUI            string         `json:"CUI"`
	PreferredName  string         `json:"preferred_name"`
	SemanticTypes  []string       `json:"STY"`
	Codes          []codeEntryDoc `json:"codes"`
	Definitions    []string       `json:"definitions"`
	SearchableText string         `json:"searchable_text"`
}

type codeEntryDoc struct {
	SAB           string   `json:"SAB"`
	Code          string   `json:"CODE"`
	PreferredName string   `json:"preferred_name"`
	Strings       []string `json:"strings"`
}

// parseEntry converts one index entry into a domain hit. This is the
// single validation point for index responses: documents with a
// missing CUI or preferred name are malformed and are dropped here,
// never scored downstream.
func (r *Repo) parseEntry(entry db.SearchEntry, kind hit.Kind) (hit.Hit, bool) {
	raw, ok := entry.Fields[fieldDoc]
	if !ok {
		r.logger.Warn("index entry missing stored document",
			zap.String("key", entry.Key))
		return hit.Hit{}, false
	}

	var doc conceptDoc
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		r.logger.Warn("malformed concept document",
			zap.String("key", entry.Key), zap.Error(err))
		return hit.Hit{}, false
	}

	if doc.CUI == "" || doc.PreferredName == "" {
		r.logger.Warn("concept document missing required fields",
			zap.String("key", entry.Key), zap.String("cui", doc.CUI))
		return hit.Hit{}, false
	}

	return hit.New(docToDomain(doc), entry.Score, kind), true
}

func docToDomain(doc conceptDoc) domain.Concept {
	codes := make([]domain.CodeEntry, len(doc.Codes))
	for i, c := range doc.Codes {
		codes[i] = domain.CodeEntry{
			SAB:           c.SAB,
			Code:          c.Code,
			PreferredName: c.PreferredName,
			Strings:       c.Strings,
		}
	}
	return domain.Concept{
		CUI:            doc.CUI,
		PreferredName:  doc.PreferredName,
		SemanticTypes:  doc.SemanticTypes,
		Codes:          codes,
		Definitions:    doc.Definitions,
		SearchableText: doc.SearchableText,
	}
}
