package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	goschemes "github.com/reoring/goschemes"
	"github.com/reoring/goschemes/category"
	"github.com/reoring/goschemes/codec"
)

type categoryOpts struct {
	base    string
	homsets bool
}

var exampleForCategoryCmd = `
  goschemes category
  goschemes category --base ZZ
  goschemes category --base "Spec(GF(7))" -o json
  goschemes category --homsets
`

func newCategoryCmd(v *viper.Viper) *cobra.Command {
	opts := &categoryOpts{}
	cmd := &cobra.Command{
		Use:     "category",
		Short:   "Describe the category of schemes, optionally over a base",
		Args:    cobra.NoArgs,
		Example: exampleForCategoryCmd,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := goschemes.RegistryFrom(cmd.Context())
			if err != nil {
				return err
			}
			format, err := outputFormat(v)
			if err != nil {
				return err
			}

			var c category.Category
			switch {
			case opts.homsets:
				c = reg.Schemes().Homsets()
			case opts.base != "":
				in, err := codec.ParseValue(opts.base)
				if err != nil {
					return err
				}
				if c, err = reg.Category(in); err != nil {
					return err
				}
			default:
				c = reg.Schemes()
			}

			out, err := codec.Marshal(codec.DescribeCategory(c), format)
			if err != nil {
				return errors.Wrap(err, "failed to encode category")
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().StringVar(&opts.base, "base", "", "base scheme or ring (e.g. ZZ, Spec(QQ), P(2,QQ))")
	cmd.Flags().BoolVar(&opts.homsets, "homsets", false, "describe the category of homsets of schemes")
	return cmd
}
