package pipeline

import (
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/dominosheet/pkg/errors"
)

// LoadOptions reads a TOML configuration file on top of [DefaultOptions].
// Keys absent from the file keep their default; unknown keys are an error so
// that typos do not silently fall back to defaults. A relative values_file
// is resolved against the directory of path.
//
//	unit = "mm"
//	formats = ["pdf", "png"]
//
//	[page]
//	width = 210.0
//	height = 297.0
//	count = 2
//
//	[page.margin]
//	top = 10.0
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	md, err := toml.DecodeFile(path, &opts)
	if os.IsNotExist(err) {
		return Options{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
	}
	if err != nil {
		return Options{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		slices.Sort(keys)
		return Options{}, errors.New(errors.ErrCodeInvalidInput,
			"config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if opts.ValuesFile != "" && !filepath.IsAbs(opts.ValuesFile) {
		opts.ValuesFile = filepath.Join(filepath.Dir(path), opts.ValuesFile)
	}
	return opts, nil
}

// EncodeTOML writes o in the format LoadOptions reads.
func (o Options) EncodeTOML(w io.Writer) error {
	return toml.NewEncoder(w).Encode(o)
}
