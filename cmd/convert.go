package cmd

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/markdown2resume/md2resume/internal/convert"
	"github.com/markdown2resume/md2resume/internal/document"
)

var pdfCmd = &cobra.Command{
	Use:   "pdf <resume.md>",
	Short: "Convert a markdown resume to an ATS-friendly PDF",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		convertPDF(cmd, args)
	},
}

var docxCmd = &cobra.Command{
	Use:   "docx <resume.md>",
	Short: "Convert a markdown resume to an ATS-friendly DOCX",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		convertDOCX(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(pdfCmd)
	rootCmd.AddCommand(docxCmd)

	for _, c := range []*cobra.Command{pdfCmd, docxCmd} {
		c.Flags().StringP("output", "o", "", "output path (default is the input name with the target extension)")
		c.Flags().BoolP("force", "f", false, "overwrite the output file without asking")
	}
}

func convertPDF(cmd *cobra.Command, args []string) {
	logger := newLogger()

	doc, outPath, ok := prepareConversion(cmd, args[0], ".pdf", logger)
	if !ok {
		return
	}

	renderer := convert.NewPDFRenderer(logger)
	data, err := renderer.RenderPDF(context.Background(), doc.Raw)
	if err != nil {
		logger.Fatal("rendering pdf", zap.Error(err))
	}

	writeConverted(outPath, data, logger)
}

func convertDOCX(cmd *cobra.Command, args []string) {
	logger := newLogger()

	doc, outPath, ok := prepareConversion(cmd, args[0], ".docx", logger)
	if !ok {
		return
	}

	writer := convert.NewDOCXWriter(logger)
	data, err := writer.RenderDOCX(doc.Raw)
	if err != nil {
		logger.Fatal("rendering docx", zap.Error(err))
	}

	writeConverted(outPath, data, logger)
}

// prepareConversion loads the source document, resolves the output path and
// asks for overwrite confirmation. ok is false when the user declined.
func prepareConversion(cmd *cobra.Command, inPath, ext string, logger *zap.Logger) (doc *document.Document, outPath string, ok bool) {
	doc, err := document.Load(inPath, document.RoleResume)
	if err != nil {
		logger.Fatal("loading resume", zap.Error(err))
	}

	outPath, _ = cmd.Flags().GetString("output")
	if outPath == "" {
		outPath = strings.TrimSuffix(inPath, ".md") + ext
	}

	force, _ := cmd.Flags().GetBool("force")
	proceed, err := confirmOverwrite(outPath, force)
	if err != nil {
		logger.Fatal("reading confirmation", zap.Error(err))
	}
	if !proceed {
		logger.Info("exiting", zap.String("reason", "overwrite declined"))
		return nil, "", false
	}

	return doc, outPath, true
}

func writeConverted(path string, data []byte, logger *zap.Logger) {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		logger.Fatal("writing output file", zap.Error(err))
	}

	logger.Info("conversion finished",
		zap.String("path", path),
		zap.Int("bytes", len(data)),
	)
}
