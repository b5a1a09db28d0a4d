package usecase

import (
	"context"
	"html/template"
	"regexp"
	"strings"

	"vetcareer-backend/internal/domain"
	"vetcareer-backend/pkg/apperror"
)

// resumeTemplate mirrors the builder's print layout: bordered identity
// header, then the fixed section order. Awards render only when present;
// the other sections always render, empty or not. A4 pagination is the
// renderer's job.
var resumeTemplate = template.Must(template.New("resume").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  @page { size: A4; margin: 0; }
  body { padding: 40px; font-size: 11px; line-height: 1.5; font-family: Helvetica, Arial, sans-serif; color: #112131; }
  .header { margin-bottom: 20px; border-bottom: 1px solid #112131; padding-bottom: 10px; }
  .name { font-size: 20px; font-weight: bold; margin-bottom: 5px; }
  .section { margin-bottom: 15px; }
  .section-title { font-size: 14px; font-weight: bold; margin-bottom: 8px; border-bottom: 1px solid #eee; padding-bottom: 3px; }
  p { white-space: pre-wrap; margin: 0; }
</style>
</head>
<body>
  <div class="header">
    <div class="name">{{.Name}}</div>
    <div>{{.Identifier}}</div>
  </div>
  <div class="section">
    <div class="section-title">PROFESSIONAL DESCRIPTION</div>
    <p>{{.Draft.Description}}</p>
  </div>
  <div class="section">
    <div class="section-title">TRAINING EXPERIENCE</div>
    <p>{{.Draft.TrainingExperience}}</p>
  </div>
  <div class="section">
    <div class="section-title">SKILLS</div>
    <p>{{.Draft.Skills}}</p>
  </div>
  <div class="section">
    <div class="section-title">WORK EXPERIENCE</div>
    <p>{{.Draft.WorkExperience}}</p>
  </div>
{{- if .Draft.Awards}}
  <div class="section">
    <div class="section-title">AWARDS &amp; RECOGNITION</div>
    <p>{{.Draft.Awards}}</p>
  </div>
{{- end}}
</body>
</html>
`))

type resumeUsecase struct {
	renderer domain.DocumentRenderer
}

func NewResumeUsecase(renderer domain.DocumentRenderer) domain.ResumeUsecase {
	return &resumeUsecase{renderer: renderer}
}

// LayoutResume produces the HTML document for the draft. It is pure so the
// section layout is testable without a browser.
func (u *resumeUsecase) LayoutResume(draft domain.ResumeDraft, identity *domain.Identity) (string, error) {
	data := struct {
		Name       string
		Identifier string
		Draft      domain.ResumeDraft
	}{
		Draft: draft,
	}
	if identity != nil {
		data.Name = identity.Name
		data.Identifier = identity.Identifier
	}

	var sb strings.Builder
	if err := resumeTemplate.Execute(&sb, data); err != nil {
		return "", apperror.Internal(err)
	}
	return sb.String(), nil
}

func (u *resumeUsecase) GenerateResume(ctx context.Context, draft domain.ResumeDraft, identity *domain.Identity) (*domain.ResumeDocument, error) {
	html, err := u.LayoutResume(draft, identity)
	if err != nil {
		return nil, err
	}

	pdf, err := u.renderer.RenderHTMLToPDF(ctx, html)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.ResumeDocument{
		Filename: resumeFilename(draft.ResumeName),
		PDF:      pdf,
	}, nil
}

var filenameUnsafe = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// resumeFilename turns the draft's resume name into a safe download name,
// collapsing whitespace to underscores.
func resumeFilename(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "resume"
	}
	name = strings.Join(strings.Fields(name), "_")
	name = filenameUnsafe.ReplaceAllString(name, "")
	if name == "" {
		name = "resume"
	}
	return name + ".pdf"
}
