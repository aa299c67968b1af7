package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Skufu/GoTriage/internal/advisor"
	"github.com/Skufu/GoTriage/internal/llm"
	"github.com/Skufu/GoTriage/internal/triage"
)

func newConsultCmd() *cobra.Command {
	var (
		symptoms  []string
		imagePath string
		audioPath string
		quality   string
		useLLM    bool
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "consult [symptom...]",
		Short: "Produce a consultation, optionally with an image or voice note",
		Long: `consult runs the assessment and writes the user-facing response.
With --llm the model configured through TRIAGE_LLM_PROVIDER (or the first of
GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY found) narrates unmatched
or image cases; without it they get the templated fallback.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			q := triage.ImageQuality(quality)
			if !q.Valid() {
				return fmt.Errorf("--quality must be %q or %q", triage.ImageQualityGood, triage.ImageQualityUnknown)
			}

			engine, err := newEngine()
			if err != nil {
				return err
			}

			req := advisor.Request{Symptoms: append(symptoms, args...), ImageQuality: q}
			if imagePath != "" {
				data, err := os.ReadFile(imagePath)
				if err != nil {
					return fmt.Errorf("read image: %w", err)
				}
				mime := http.DetectContentType(data)
				if !strings.HasPrefix(mime, "image/") {
					return fmt.Errorf("%s is not an image (%s)", imagePath, mime)
				}
				req.Image = &llm.Image{MIMEType: mime, Data: data}
			}
			if audioPath != "" {
				data, err := os.ReadFile(audioPath)
				if err != nil {
					return fmt.Errorf("read audio: %w", err)
				}
				req.Audio = &advisor.Audio{Filename: filepath.Base(audioPath), Data: data}
			}

			logger := log.New(cmd.ErrOrStderr(), "", log.LstdFlags)
			opts := []advisor.Option{advisor.WithLogger(logger)}
			cfg := advisor.DefaultConfig()
			if useLLM {
				llmCfg := llm.ConfigFromEnv()
				if err := llmCfg.Validate(); err != nil {
					return fmt.Errorf("llm config: %w", err)
				}
				provider, err := llm.NewProvider(cmd.Context(), llmCfg, logger)
				if err != nil {
					return err
				}
				opts = append(opts, advisor.WithProvider(provider))
				if llmCfg.OpenAI.APIKey != "" {
					transcriber, err := llm.NewWhisperTranscriber(llmCfg.OpenAI)
					if err != nil {
						return fmt.Errorf("transcriber: %w", err)
					}
					opts = append(opts, advisor.WithTranscriber(transcriber))
				}
				cfg.Timeout = llmCfg.Timeout
			}

			c := advisor.New(engine, cfg, opts...).Consult(cmd.Context(), req)

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(c)
			}
			if c.Headline != "" {
				fmt.Fprintln(out, c.Headline)
				fmt.Fprintln(out)
			}
			fmt.Fprintln(out, c.Response)
			if c.Disclaimer != "" {
				fmt.Fprintln(out)
				fmt.Fprintln(out, c.Disclaimer)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&symptoms, "symptom", "s", nil, "Selected symptom (repeatable)")
	cmd.Flags().StringVar(&imagePath, "image", "", "Path to an image of the affected area")
	cmd.Flags().StringVar(&audioPath, "audio", "", "Path to a recorded voice description")
	cmd.Flags().StringVar(&quality, "quality", "", "Image quality hint: good or unknown")
	cmd.Flags().BoolVar(&useLLM, "llm", false, "Use the configured language model")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the consultation as JSON")
	return cmd
}
