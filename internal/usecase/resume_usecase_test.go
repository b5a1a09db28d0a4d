package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vetcareer-backend/internal/domain"
	"vetcareer-backend/internal/usecase"
)

type stubRenderer struct {
	lastHTML string
}

func (r *stubRenderer) RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	r.lastHTML = html
	return []byte("%PDF-1.4 stub"), nil
}

func testDraft() domain.ResumeDraft {
	return domain.ResumeDraft{
		ResumeName:         "Operations Manager Resume",
		Description:        "Veteran operations leader.",
		Skills:             "Leadership, Logistics",
		WorkExperience:     "US Army, 2014-2024",
		Education:          "B.S. Management",
		TrainingExperience: "Airborne School",
		Awards:             "Army Commendation Medal",
	}
}

func testIdentity() *domain.Identity {
	return &domain.Identity{
		ID:         "1",
		Name:       "John Veteran",
		Identifier: "veteran@example.com",
		Role:       domain.RoleVeteran,
	}
}

func TestLayoutResume(t *testing.T) {
	uc := usecase.NewResumeUsecase(&stubRenderer{})

	t.Run("sections appear in the fixed order", func(t *testing.T) {
		html, err := uc.LayoutResume(testDraft(), testIdentity())
		require.NoError(t, err)

		order := []string{
			"John Veteran",
			"veteran@example.com",
			"PROFESSIONAL DESCRIPTION",
			"TRAINING EXPERIENCE",
			"SKILLS",
			"WORK EXPERIENCE",
			"AWARDS &amp; RECOGNITION",
		}
		last := -1
		for _, marker := range order {
			idx := strings.Index(html, marker)
			require.GreaterOrEqual(t, idx, 0, marker)
			assert.Greater(t, idx, last, marker)
			last = idx
		}
	})

	t.Run("awards section is omitted when empty", func(t *testing.T) {
		draft := testDraft()
		draft.Awards = ""
		html, err := uc.LayoutResume(draft, testIdentity())
		require.NoError(t, err)
		assert.NotContains(t, html, "AWARDS")
	})

	t.Run("empty sections still render their headings", func(t *testing.T) {
		html, err := uc.LayoutResume(domain.ResumeDraft{}, testIdentity())
		require.NoError(t, err)
		assert.Contains(t, html, "PROFESSIONAL DESCRIPTION")
		assert.Contains(t, html, "TRAINING EXPERIENCE")
		assert.Contains(t, html, "SKILLS")
		assert.Contains(t, html, "WORK EXPERIENCE")
	})

	t.Run("draft content is HTML-escaped", func(t *testing.T) {
		draft := testDraft()
		draft.Description = `<script>alert("x")</script>`
		html, err := uc.LayoutResume(draft, testIdentity())
		require.NoError(t, err)
		assert.NotContains(t, html, "<script>")
	})
}

func TestGenerateResume(t *testing.T) {
	renderer := &stubRenderer{}
	uc := usecase.NewResumeUsecase(renderer)
	ctx := context.Background()

	t.Run("renders the layout and names the file", func(t *testing.T) {
		doc, err := uc.GenerateResume(ctx, testDraft(), testIdentity())
		require.NoError(t, err)
		assert.Equal(t, "Operations_Manager_Resume.pdf", doc.Filename)
		assert.NotEmpty(t, doc.PDF)
		assert.Contains(t, renderer.lastHTML, "PROFESSIONAL DESCRIPTION")
	})

	t.Run("blank resume name falls back to a default", func(t *testing.T) {
		draft := testDraft()
		draft.ResumeName = "   "
		doc, err := uc.GenerateResume(ctx, draft, testIdentity())
		require.NoError(t, err)
		assert.Equal(t, "resume.pdf", doc.Filename)
	})

	t.Run("hostile characters are stripped from the filename", func(t *testing.T) {
		draft := testDraft()
		draft.ResumeName = `../etc/passwd "resume"`
		doc, err := uc.GenerateResume(ctx, draft, testIdentity())
		require.NoError(t, err)
		assert.NotContains(t, doc.Filename, "/")
		assert.NotContains(t, doc.Filename, `"`)
		assert.True(t, strings.HasSuffix(doc.Filename, ".pdf"))
	})
}
