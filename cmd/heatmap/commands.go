package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ukaji3/heatmap-go/pkg/heatmap"
	"github.com/ukaji3/heatmap-go/pkg/heatmap/models"
	"github.com/ukaji3/heatmap-go/pkg/heatmap/output"
	"github.com/ukaji3/heatmap-go/pkg/heatmap/parser"
	"github.com/ukaji3/heatmap-go/pkg/heatmap/render"
)

func newXLSXCmd() *cobra.Command {
	var (
		outputPath  string
		sheets      []string
		cellRange   string
		printArea   bool
		detectTable bool
	)

	cmd := &cobra.Command{
		Use:   "xlsx [input.xlsx]",
		Short: "Fill the cells of an Excel workbook with heatmap colors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, logger, err := setup()
			if err != nil {
				return err
			}
			defer logger.Sync()

			if outputPath == "" && jsonPath == "" {
				return fmt.Errorf("nothing to write: set --output and/or --json")
			}

			wb, err := heatmap.ColorWorkbook(cmd.Context(), args[0], outputPath, heatmap.WorkbookOptions{
				Options:      opts,
				Sheets:       sheets,
				Range:        cellRange,
				UsePrintArea: printArea,
				DetectTable:  detectTable,
				HeaderRows:   cfg.HeaderRows,
			})
			if err != nil {
				return fmt.Errorf("coloring failed: %w", err)
			}
			logger.Info("Workbook colored",
				zap.String("input", args[0]),
				zap.String("output", outputPath),
				zap.Int("sheets", len(wb.Sheets)))

			if jsonPath == "" {
				return nil
			}
			data, err := output.ToJSON(wb, pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			return writeOutput(jsonPath, data)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output workbook path")
	cmd.Flags().StringSliceVar(&sheets, "sheet", nil, "Sheet to color (repeatable, default: all)")
	cmd.Flags().StringVar(&cellRange, "range", "", "Restrict coloring to an A1 range, e.g. B2:F20 or Q1!B2:F20")
	cmd.Flags().BoolVar(&printArea, "print-area", false, "Restrict coloring to each sheet's print area")
	cmd.Flags().BoolVar(&detectTable, "detect-table", false, "Restrict coloring to the detected data region")
	cmd.Flags().IntVar(&cfg.HeaderRows, "header-rows", cfg.HeaderRows, "Leading rows of the region left uncolored")
	return cmd
}

func newHTMLCmd() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "html [input.html]",
		Short: "Color the body rows of the tables in an HTML document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, logger, err := setup()
			if err != nil {
				return err
			}
			defer logger.Sync()

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			doc, err := parser.ParseHTML(f)
			if err != nil {
				return fmt.Errorf("failed to parse %s: %w", args[0], err)
			}

			rec := render.NewRecorder()
			if err := heatmap.Apply(cmd.Context(), doc, render.Tee(render.NewHTMLSink(doc), rec), opts); err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := doc.Render(&buf); err != nil {
				return err
			}
			if outputPath == "" {
				fmt.Println(buf.String())
			} else if err := writeOutput(outputPath, buf.Bytes()); err != nil {
				return err
			}

			return writeColors(&models.SheetData{Rows: rec.RowColors()})
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	return cmd
}

func newCSVCmd() *cobra.Command {
	var htmlPath string

	cmd := &cobra.Command{
		Use:   "csv [input.csv]",
		Short: "Preview a CSV file as a heatmap in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, logger, err := setup()
			if err != nil {
				return err
			}
			defer logger.Sync()

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			table, err := parser.ReadCSV(f, cfg.HeaderRows)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			rec := render.NewRecorder()
			if err := heatmap.Apply(cmd.Context(), table, rec, opts); err != nil {
				return err
			}
			rows, err := table.Rows(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Println(render.Terminal(table.Header, rows, rec))

			if htmlPath != "" {
				var buf bytes.Buffer
				if err := render.WriteHTMLTable(&buf, table.Header, rows, rec); err != nil {
					return err
				}
				if err := writeOutput(htmlPath, buf.Bytes()); err != nil {
					return err
				}
			}

			return writeColors(&models.SheetData{Rows: rec.RowColors()})
		},
	}

	cmd.Flags().StringVar(&htmlPath, "html", "", "Also write the colored table as HTML to this file")
	cmd.Flags().IntVar(&cfg.HeaderRows, "header-rows", cfg.HeaderRows, "Leading rows treated as the header")
	return cmd
}

func writeColors(sheet *models.SheetData) error {
	if jsonPath == "" {
		return nil
	}
	data, err := output.SheetToJSON(sheet, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return writeOutput(jsonPath, data)
}
