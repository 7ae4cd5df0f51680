package chi

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"

	"github.com/openvocab/cuisearch/internal/domain/search/hit"
	"github.com/openvocab/cuisearch/internal/domain/search/page"
	healthuc "github.com/openvocab/cuisearch/internal/usecase/health"
)

// score serializes a fused score. Exact matches carry +Inf internally,
// which JSON cannot represent; they serialize as null.
type score float64

// MarshalJSON implements json.Marshaler.
func (s score) MarshalJSON() ([]byte, error) {
	f := float64(s)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(f, 'g', -1, 64)), nil
}

type searchResponse struct {
	Total   int          `json:"total"`
	Results []resultItem `json:"results"`
}

type resultItem struct {
	CUI           string     `json:"CUI"`
	PreferredName string     `json:"preferred_name"`
	STY           []string   `json:"STY"`
	Codes         []codeItem `json:"codes"`
	Definitions   []string   `json:"definitions"`
	MatchType     string     `json:"matchType"`
	CustomScore   score      `json:"_customScore"`
}

type codeItem struct {
	SAB           string   `json:"SAB"`
	Code          string   `json:"CODE"`
	PreferredName string   `json:"preferred_name"`
	Strings       []string `json:"strings"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func pageToResponse(p *page.Page) searchResponse {
	results := make([]resultItem, 0, len(p.Results()))
	for _, h := range p.Results() {
		results = append(results, hitToItem(h))
	}
	return searchResponse{Total: p.Total(), Results: results}
}

func hitToItem(h hit.Hit) resultItem {
	c := h.Concept()

	codes := make([]codeItem, 0, len(c.Codes))
	for _, ce := range c.Codes {
		codes = append(codes, codeItem{
			SAB:           ce.SAB,
			Code:          ce.Code,
			PreferredName: ce.PreferredName,
			Strings:       emptyIfNil(ce.Strings),
		})
	}

	return resultItem{
		CUI:           c.CUI,
		PreferredName: c.PreferredName,
		STY:           emptyIfNil(c.SemanticTypes),
		Codes:         codes,
		Definitions:   emptyIfNil(c.Definitions),
		MatchType:     string(h.Kind()),
		CustomScore:   score(h.FusedScore()),
	}
}

func healthToResponse(report healthuc.Report) healthResponse {
	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}
	return healthResponse{Status: string(report.Status), Checks: checks}
}

func hasExact(items []resultItem) bool {
	for _, it := range items {
		if it.MatchType == string(hit.Exact) {
			return true
		}
	}
	return false
}

func emptyIfNil(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg, details string) {
	writeJSON(w, status, errorResponse{Error: msg, Details: details})
}
