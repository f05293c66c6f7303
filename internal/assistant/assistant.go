package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/31d4r/Raven/internal/model"
	"github.com/31d4r/Raven/internal/pipeline"
	"github.com/31d4r/Raven/internal/prompt"
)

func (a *implAssistant) Extract(ctx context.Context, projectID int64) (pipeline.Report, error) {
	_, report, err := a.gather(ctx, projectID)
	return report, err
}

func (a *implAssistant) Ask(ctx context.Context, projectID int64, question string) (*Answer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, fmt.Errorf("question must not be empty")
	}

	project, report, err := a.gather(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return a.respond(ctx, project, report, prompt.Question(question, report.Context))
}

func (a *implAssistant) Podcast(ctx context.Context, projectID int64, style prompt.Style, length prompt.Length) (*Answer, error) {
	project, report, err := a.gather(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if report.Context == "" {
		a.logger.Warn(ctx, "Project %s has no extracted text; the podcast will have nothing to discuss", project.Name)
	}

	return a.respond(ctx, project, report, prompt.Podcast(project.Name, report.Context, style, length))
}

func (a *implAssistant) gather(ctx context.Context, projectID int64) (*model.Project, pipeline.Report, error) {
	project, err := a.files.Project(ctx, projectID)
	if err != nil {
		return nil, pipeline.Report{}, err
	}

	files, err := a.files.Files(ctx, projectID)
	if err != nil {
		return nil, pipeline.Report{}, fmt.Errorf("fetch files: %w", err)
	}

	a.logger.Info(ctx, "Extracting %d file(s) for project %s", len(files), project.Name)
	return project, a.orchestrator.Run(ctx, files), nil
}

func (a *implAssistant) respond(ctx context.Context, project *model.Project, report pipeline.Report, payload string) (*Answer, error) {
	text, err := a.completer.Respond(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("completion: %w", err)
	}

	answer := &Answer{Project: project, Text: text}
	if a.surfaceErrors {
		for _, f := range report.Failures {
			answer.Warnings = append(answer.Warnings, f.Error())
		}
	}
	return answer, nil
}
