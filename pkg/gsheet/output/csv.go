package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/ukaji3/gsheet-go/pkg/gsheet/models"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// GetEncoding resolves a charset label. UTF-8 and the empty label return a
// nil encoding.
func GetEncoding(encName string) (encoding.Encoding, error) {
	encName = strings.ToLower(encName)
	if encName == "" || encName == "utf-8" || encName == "utf8" {
		return nil, nil
	}
	enc, err := htmlindex.Get(encName)
	if err != nil {
		err = fmt.Errorf("%q: %w", encName, err)
	}
	return enc, err
}

// WriteCSV writes cells as a rectangular CSV grid encoded with encName.
// Missing cells become empty fields.
func WriteCSV(w io.Writer, cells []models.Cell, encName string) error {
	enc, err := GetEncoding(encName)
	if err != nil {
		return err
	}
	var closer io.Closer
	if enc != nil {
		ew := enc.NewEncoder().Writer(w)
		w, closer = ew, ew.(io.Closer)
	}

	cw := csv.NewWriter(w)
	for _, row := range newTable(cells).rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	if closer != nil {
		return closer.Close()
	}
	return nil
}
