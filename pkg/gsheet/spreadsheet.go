package gsheet

import (
	"context"
	"net/http"
	"net/url"
	"sync"

	"github.com/ukaji3/gsheet-go/pkg/gsheet/models"
	"golang.org/x/sync/errgroup"
)

// Spreadsheet addresses one spreadsheet.
type Spreadsheet struct {
	client *Client
	id     string
}

// ID returns the spreadsheet id.
func (s *Spreadsheet) ID() string { return s.id }

// Sheet returns a handle for the sheet with the given title.
func (s *Spreadsheet) Sheet(title string) *Sheet {
	return &Sheet{spreadsheet: s, title: title}
}

// Get fetches spreadsheet metadata.
func (s *Spreadsheet) Get(ctx context.Context, opts GetOptions) (*models.Spreadsheet, error) {
	var out models.Spreadsheet
	if err := s.client.do(ctx, http.MethodGet, s.path(""), opts.query(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SheetCells reads every listed sheet concurrently and returns the cells of
// each, keyed by title. The first failure cancels the remaining reads.
func (s *Spreadsheet) SheetCells(ctx context.Context, titles []string, opts ValuesOptions) (map[string][]models.Cell, error) {
	var mu sync.Mutex
	out := make(map[string][]models.Cell, len(titles))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.client.maxConcurrency)
	for _, title := range titles {
		g.Go(func() error {
			cells, err := s.Sheet(title).Cells(ctx, opts)
			if err != nil {
				return err
			}
			mu.Lock()
			out[title] = cells
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// path returns the URL path below the spreadsheets collection.
func (s *Spreadsheet) path(suffix string) string {
	return "/" + url.PathEscape(s.id) + suffix
}
