package pdf

import (
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

func init() {
	// Validation only; keep pdfcpu from creating a config dir under $HOME.
	api.DisableConfigDir()
}

// Info summarizes a validated PDF.
type Info struct {
	Path  string
	Size  int64
	Pages int
}

// Check validates the PDF at path and reports its page count.
func Check(path string) (*Info, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, &InvalidError{Path: path, Message: "cannot access file", Cause: err}
	}
	if fi.Size() == 0 {
		return nil, &InvalidError{Path: path, Message: "file is empty"}
	}

	conf := model.NewDefaultConfiguration()
	if err := api.ValidateFile(path, conf); err != nil {
		return nil, &InvalidError{Path: path, Message: "structure is invalid", Cause: err}
	}

	ctx, err := api.ReadContextFile(path)
	if err != nil {
		return nil, &InvalidError{Path: path, Message: "cannot read document", Cause: err}
	}

	return &Info{Path: path, Size: fi.Size(), Pages: ctx.PageCount}, nil
}
