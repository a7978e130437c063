package main

// Run the analysis prompt against a local document:
//   go run ./cmd/prompttest -doc contract.pdf

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"legilight-backend/internal/analysis"
	"legilight-backend/internal/extract"
	"legilight-backend/internal/llm"
	"legilight-backend/internal/llm/gemini"
	"legilight-backend/internal/shared/config"
)

func main() {
	cfg := config.Load()

	docPath := flag.String("doc", "", "Path to document file (txt, pdf, or docx)")
	question := flag.String("question", "", "Optional follow-up question instead of full analysis")
	promptOnly := flag.Bool("prompt-only", false, "Print the rendered prompt without calling the model")
	outPath := flag.String("out", "", "Path to write JSON output (optional)")
	provider := flag.String("provider", cfg.LLMProvider, "LLM provider")
	model := flag.String("model", cfg.LLMModel, "LLM model")
	flag.Parse()

	if strings.TrimSpace(*docPath) == "" {
		exitErr("doc path is required")
	}

	fileName := filepath.Base(*docPath)
	format, ok := extract.FormatFromFilename(fileName)
	if !ok {
		exitErr(fmt.Sprintf("unsupported document file type: %s", filepath.Ext(*docPath)))
	}

	data, err := os.ReadFile(*docPath)
	if err != nil {
		exitErr(fmt.Sprintf("read document: %v", err))
	}

	documentText, err := extract.ExtractText(data, format)
	if err != nil {
		exitErr(fmt.Sprintf("extract document text: %v", err))
	}

	prompt := analysis.BuildAnalysisPrompt(documentText, fileName)
	if strings.TrimSpace(*question) != "" {
		prompt = analysis.BuildQuestionPrompt(documentText, *question, nil)
	}

	if *promptOnly {
		fmt.Println(prompt)
		return
	}

	client, err := buildClient(*provider, *model)
	if err != nil {
		exitErr(err.Error())
	}

	svc := &analysis.Service{
		Gateway:  &analysis.Gateway{Client: client},
		Provider: *provider,
		Model:    *model,
	}

	var payload any
	if strings.TrimSpace(*question) != "" {
		payload = svc.AnswerQuestion(context.Background(), documentText, *question, nil)
	} else {
		result, totalSeconds := svc.Analyze(context.Background(), documentText, fileName)
		fmt.Fprintf(os.Stderr, "analysis completed in %.2fs\n", totalSeconds)
		payload = result
	}

	pretty, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		exitErr(fmt.Sprintf("format json: %v", err))
	}

	if *outPath != "" {
		if err := os.WriteFile(*outPath, append(pretty, '\n'), 0o644); err != nil {
			exitErr(fmt.Sprintf("write output: %v", err))
		}
	}

	fmt.Println(string(pretty))
}

func buildClient(provider, model string) (llm.Client, error) {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case "", "gemini":
		return gemini.NewClient(os.Getenv("GEMINI_API_KEY"), model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}

func exitErr(msg string) {
	_, _ = fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
