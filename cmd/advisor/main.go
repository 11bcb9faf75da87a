package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/vfg2006/business-advisor-api/internal/config"
	"github.com/vfg2006/business-advisor-api/internal/domain"
	"github.com/vfg2006/business-advisor-api/internal/usecases/advising"
	"github.com/vfg2006/business-advisor-api/pkg/utils"
)

var inputPath string

// rootCmd é o comando base da CLI
var rootCmd = &cobra.Command{
	Use:   "advisor",
	Short: "Análise offline de registros diários de negócio",
	Long: `advisor executa o pipeline de análise (validação, métricas e
recomendações) sem servidor e sem banco de dados.

Os limites das regras podem ser ajustados via variáveis de ambiente
(THRESHOLD_*) ou por requisição, no campo "thresholds" da entrada.`,
	SilenceUsage: true,
}

// analyzeCmd analisa um par de registros diários lido de um arquivo ou do stdin
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analisa um par de registros diários e imprime o relatório",
	Long: `Lê um JSON com os registros de hoje e de ontem e imprime o relatório
com métricas, alertas e recomendações.

Formato de entrada:

  {
    "today":     {"sales": 1000, "costs": 800, "customers": 50},
    "yesterday": {"sales": 900, "costs": 750, "customers": 45},
    "thresholds": {"cac_ceiling": 50}
  }

Os dois registros são obrigatórios; os limites são opcionais.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&inputPath, "input", "i", "-", "Arquivo de entrada com os registros (use '-' para stdin)")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	payload, err := readInput(inputPath)
	if err != nil {
		return err
	}

	request := &domain.AnalyzeRequest{}
	if err := json.Unmarshal(payload, request); err != nil {
		return fmt.Errorf("entrada inválida: %w", err)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	advisor := advising.NewService(cfg)

	report, err := advisor.Analyze(request)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), utils.PrettyJson(report))
	return nil
}

// readInput lê o conteúdo do arquivo informado, ou do stdin quando o caminho é "-"
func readInput(path string) ([]byte, error) {
	if path == "-" {
		payload, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler stdin: %w", err)
		}

		return payload, nil
	}

	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler o arquivo %s: %w", path, err)
	}

	return payload, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
