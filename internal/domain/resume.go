package domain

import "context"

// ResumeDraft is the flat set of resume fields submitted by the builder
// form. Drafts are transient: they exist only for the duration of one
// generation call and are never persisted.
type ResumeDraft struct {
	ResumeName         string `json:"resume_name"`
	Description        string `json:"description"`
	Skills             string `json:"skills"` // comma-delimited
	WorkExperience     string `json:"work_experience"`
	Education          string `json:"education"`
	TrainingExperience string `json:"training_experience"`
	Awards             string `json:"awards"`
}

// ResumeDocument is a generated, downloadable resume.
type ResumeDocument struct {
	Filename string
	PDF      []byte
}

// DocumentRenderer prints an HTML document to paginated PDF. Content that
// overflows one page continues on the next; nothing is truncated.
type DocumentRenderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// ResumeUsecase lays a draft out into the fixed section order and exports
// it as PDF. LayoutResume is the pure structural stage; GenerateResume
// additionally runs the renderer and names the file.
type ResumeUsecase interface {
	LayoutResume(draft ResumeDraft, identity *Identity) (string, error)
	GenerateResume(ctx context.Context, draft ResumeDraft, identity *Identity) (*ResumeDocument, error)
}
