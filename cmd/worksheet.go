package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/ks2maths/internal/curriculum"
	"github.com/abhisek/ks2maths/internal/worksheet"
)

var worksheetCmd = &cobra.Command{
	Use:   "worksheet",
	Short: "Write a printable PDF worksheet with an answer key",
	Example: `  ks2maths worksheet --module M08_Y6_MEAS --level 3 --count 20 --out volume.pdf`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		module, _ := cmd.Flags().GetString("module")
		level, _ := cmd.Flags().GetInt("level")
		count, _ := cmd.Flags().GetInt("count")
		out, _ := cmd.Flags().GetString("out")
		title, _ := cmd.Flags().GetString("title")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		log, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer log.Sync()

		engine, err := newEngine(cfg, log, nil)
		if err != nil {
			return err
		}
		qs, err := engine.Generate(ctx, module, level, count)
		if len(qs) == 0 {
			return err
		}
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
		}

		if title == "" {
			if t, err := curriculum.GetTopic(module); err == nil {
				title = t.Name
			}
		}
		if out == "" {
			out = fmt.Sprintf("%s-L%d.pdf", module, level)
		}

		ws := worksheet.Worksheet{Title: title, Module: module, Level: level, Questions: qs}
		if err := worksheet.WriteFile(ws, out); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d questions to %s\n", len(qs), out)
		return nil
	},
}

func init() {
	addBatchFlags(worksheetCmd, 20)
	worksheetCmd.Flags().StringP("out", "o", "", "Output PDF path (default <module>-L<level>.pdf)")
	worksheetCmd.Flags().String("title", "", "Worksheet title (default the topic name)")
}
