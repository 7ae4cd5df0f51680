package chi

import (
	"context"

	"github.com/openvocab/cuisearch/internal/domain"
	"github.com/openvocab/cuisearch/internal/domain/search/hit"
	healthuc "github.com/openvocab/cuisearch/internal/usecase/health"
	searchuc "github.com/openvocab/cuisearch/internal/usecase/search"
)

type mockRepository struct {
	exactResults  []hit.Hit
	exactErr      error
	rankedResults []hit.Hit
	rankedErr     error
}

func (m *mockRepository) ExactMatches(context.Context, string) ([]hit.Hit, error) {
	return m.exactResults, m.exactErr
}

func (m *mockRepository) RankedMatches(context.Context, []string, bool) ([]hit.Hit, error) {
	return m.rankedResults, m.rankedErr
}

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(context.Context) error { return m.err }

func newTestServer(repo searchuc.Repository, pinger healthuc.DBPinger) *Server {
	return NewServer(searchuc.New(repo), healthuc.New(pinger))
}

func conceptHit(cui, name, text string, indexScore float64, kind hit.Kind) hit.Hit {
	return hit.New(domain.Concept{
		CUI:            cui,
		PreferredName:  name,
		SemanticTypes:  []string{"Disease or Syndrome"},
		SearchableText: text,
	}, indexScore, kind)
}
