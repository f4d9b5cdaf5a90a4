package commenter

import (
	"context"
	"strings"

	"github.com/BerylCAtieno/socialsense/internal/apperrors"
	"github.com/BerylCAtieno/socialsense/internal/models"
	"github.com/google/generative-ai-go/genai"
	"github.com/sirupsen/logrus"
)

// MissingKeyMessage is shown to users in place of comments when no
// credential is configured.
const MissingKeyMessage = "Error: Please enter your Gemini API Key in the Business Profile setup to use real AI."

type MediaAttacher interface {
	Attach(ctx context.Context, post models.PostData) (genai.Part, MediaKind)
}

// Generation is the outcome of one successful generation call.
type Generation struct {
	Comments []string
	Media    MediaKind
}

type Generator struct {
	defaultAPIKey string
	models        ModelFactory
	media         MediaAttacher
	log           *logrus.Entry
}

// NewGenerator wires the generator. defaultAPIKey is the process-wide
// fallback credential; media may be nil to always generate text-only.
func NewGenerator(defaultAPIKey string, factory ModelFactory, media MediaAttacher, log *logrus.Entry) *Generator {
	return &Generator{
		defaultAPIKey: strings.TrimSpace(defaultAPIKey),
		models:        factory,
		media:         media,
		log:           log,
	}
}

func (g *Generator) resolveAPIKey(profile models.BusinessProfile) string {
	if key := strings.TrimSpace(profile.APIKey); key != "" {
		return key
	}
	return g.defaultAPIKey
}

// Generate drafts comments for the post in the profile's brand voice.
func (g *Generator) Generate(ctx context.Context, post models.PostData, profile models.BusinessProfile) (*Generation, error) {
	apiKey := g.resolveAPIKey(profile)
	if apiKey == "" {
		return nil, apperrors.New(apperrors.CodeMissingCredential, "Missing API Key")
	}

	log := g.log.WithFields(logrus.Fields{
		"brand":  profile.Name,
		"author": post.Username,
		"type":   post.Type,
	})

	model, err := g.models.NewModel(ctx, apiKey)
	if err != nil {
		log.WithError(err).Error("Failed to create model")
		return nil, apperrors.Wrap(apperrors.CodeGenerationFailed, "AI Generation Failed", err)
	}
	defer model.Close()

	parts := []genai.Part{genai.Text(buildPrompt(post, profile))}

	media := MediaNone
	if g.media != nil {
		var part genai.Part
		part, media = g.media.Attach(ctx, post)
		if part != nil {
			parts = append(parts, part)
		}
	}

	log.WithField("media", media).Info("Generating comments")

	text, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		log.WithError(err).Error("Generation failed")
		return nil, apperrors.Wrap(apperrors.CodeGenerationFailed, "AI Generation Failed", err)
	}

	comments := ParseComments(text)
	log.WithField("count", len(comments)).Debug("Parsed comments")

	return &Generation{
		Comments: comments,
		Media:    media,
	}, nil
}
