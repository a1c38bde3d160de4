package llm

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"text/template"

	"github.com/dustin/go-humanize"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/secmon-lab/idwatch/pkg/domain/interfaces"
	"github.com/secmon-lab/idwatch/pkg/domain/model"
)

// Error tags for categorization
var (
	ErrTagInvalidJSON     = goerr.NewTag("invalid_json")
	ErrTagMissingField    = goerr.NewTag("missing_field")
	ErrTagEmptyResponse   = goerr.NewTag("empty_response")
	ErrTagTemplateFailure = goerr.NewTag("template_failure")
)

//go:embed templates/*.md
var templateFS embed.FS

// AdvisorService asks an LLM which mitigation step fits a report
type AdvisorService struct {
	llmClient gollem.LLMClient
}

var _ interfaces.Advisor = (*AdvisorService)(nil)

// adviceTemplateData contains data for the mitigation advice template
type adviceTemplateData struct {
	Table              string
	CurrentValue       string
	PredictedValue     string
	GrowthPerDay       string
	OverflowPercentage int
	Outlook            string
	TierName           string
	TierDescription    string
	Mitigations        []model.Mitigation
}

// NewAdvisorService creates a new AdvisorService instance
func NewAdvisorService(llmClient gollem.LLMClient) *AdvisorService {
	return &AdvisorService{
		llmClient: llmClient,
	}
}

// Advise generates mitigation advice for the report
func (s *AdvisorService) Advise(ctx context.Context, report *model.Report) (*model.Advice, error) {
	if report == nil {
		return nil, goerr.New("report is nil")
	}

	prompt, err := renderAdviceTemplate(adviceTemplateData{
		Table:              report.Table.String(),
		CurrentValue:       humanize.Comma(report.Forecast.CurrentValue),
		PredictedValue:     humanize.Comma(report.PredictedValue),
		GrowthPerDay:       humanize.Comma(report.GrowthPerDay),
		OverflowPercentage: report.OverflowPercentage,
		Outlook:            report.Forecast.Outlook.String(),
		TierName:           report.Tier.Name,
		TierDescription:    report.Tier.Description,
		Mitigations:        model.Mitigations(),
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to render mitigation advice template",
			goerr.T(ErrTagTemplateFailure))
	}

	session, err := s.llmClient.NewSession(ctx, gollem.WithSessionContentType(gollem.ContentTypeJSON))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create LLM session")
	}

	response, err := session.GenerateContent(ctx, gollem.Text(prompt))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate LLM response")
	}

	if len(response.Texts) == 0 || response.Texts[0] == "" {
		return nil, goerr.New("empty response from LLM",
			goerr.T(ErrTagEmptyResponse))
	}

	var advice model.Advice
	if err := json.Unmarshal([]byte(response.Texts[0]), &advice); err != nil {
		return nil, goerr.Wrap(err, "failed to parse LLM response as JSON",
			goerr.V("response", response.Texts[0]),
			goerr.T(ErrTagInvalidJSON))
	}

	if advice.Summary == "" {
		return nil, goerr.New("LLM response missing summary",
			goerr.T(ErrTagMissingField),
			goerr.V("field", "summary"))
	}

	// An unknown step is kept as free text without a catalog entry
	advice.Mitigation = model.FindMitigationByStep(advice.RecommendedStep)

	return &advice, nil
}

func renderAdviceTemplate(data adviceTemplateData) (string, error) {
	templateContent, err := templateFS.ReadFile("templates/mitigation_advice.md")
	if err != nil {
		return "", goerr.Wrap(err, "failed to read mitigation advice template")
	}

	tmpl, err := template.New("mitigation_advice").Parse(string(templateContent))
	if err != nil {
		return "", goerr.Wrap(err, "failed to parse mitigation advice template")
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", goerr.Wrap(err, "failed to execute mitigation advice template")
	}

	return buf.String(), nil
}
