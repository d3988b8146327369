package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	goschemes "github.com/reoring/goschemes"
	"github.com/reoring/goschemes/codec"
)

type convertOpts struct {
	file        string
	inputFormat string
}

var exampleForConvertCmd = `
  goschemes convert ZZ
  goschemes convert "ZZ->QQ" "Spec(GF(7))" -o yaml
  goschemes convert -f inputs.yaml
`

func newConvertCmd(v *viper.Viper) *cobra.Command {
	opts := &convertOpts{}
	cmd := &cobra.Command{
		Use:     "convert [VALUE...]",
		Short:   "Convert rings, ring homomorphisms and schemes in the category of schemes",
		Example: exampleForConvertCmd,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && opts.file == "" {
				return errors.New("nothing to convert: pass values or --file")
			}
			reg, err := goschemes.RegistryFrom(cmd.Context())
			if err != nil {
				return err
			}
			format, err := outputFormat(v)
			if err != nil {
				return err
			}

			inputs, err := readInputs(opts, args)
			if err != nil {
				return err
			}
			logrus.Debugf("converting %d value(s)", len(inputs))

			results, convErr := reg.ConvertAll(cmd.Context(), inputs)
			descs := make([]codec.ResultDescriptor, 0, len(results))
			for _, r := range results {
				if r != nil {
					descs = append(descs, codec.DescribeResult(r))
				}
			}
			if len(descs) > 0 {
				out, err := codec.Marshal(descs, format)
				if err != nil {
					return errors.Wrap(err, "failed to encode results")
				}
				if _, err := cmd.OutOrStdout().Write(out); err != nil {
					return err
				}
			}
			return convErr
		},
	}
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "read input documents from file")
	cmd.Flags().StringVar(&opts.inputFormat, "input-format", "", "input document format: text, json or yaml (default: from file extension)")
	return cmd
}

func readInputs(opts *convertOpts, args []string) ([]goschemes.Input, error) {
	var inputs []goschemes.Input
	if opts.file != "" {
		data, err := os.ReadFile(filepath.Clean(opts.file))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", opts.file)
		}
		format, err := inputFormat(opts)
		if err != nil {
			return nil, err
		}
		inputs, err = codec.Decode(data, format)
		if err != nil {
			return nil, err
		}
	}
	for _, a := range args {
		in, err := codec.ParseValue(a)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, in)
	}
	return inputs, nil
}

func inputFormat(opts *convertOpts) (codec.Format, error) {
	if opts.inputFormat != "" {
		return codec.ParseFormat(opts.inputFormat)
	}
	switch strings.ToLower(filepath.Ext(opts.file)) {
	case ".json":
		return codec.FormatJSON, nil
	case ".yaml", ".yml":
		return codec.FormatYAML, nil
	}
	return codec.FormatText, nil
}
