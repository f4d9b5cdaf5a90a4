package commenter

import (
	"context"
	"errors"
	"testing"

	"github.com/BerylCAtieno/socialsense/internal/apperrors"
	"github.com/BerylCAtieno/socialsense/internal/logging"
	"github.com/BerylCAtieno/socialsense/internal/models"
	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeModel struct {
	reply  string
	err    error
	parts  []genai.Part
	closed bool
}

func (m *fakeModel) GenerateContent(ctx context.Context, parts ...genai.Part) (string, error) {
	m.parts = parts
	return m.reply, m.err
}

func (m *fakeModel) Close() error {
	m.closed = true
	return nil
}

type fakeFactory struct {
	model   *fakeModel
	err     error
	apiKeys []string
}

func (f *fakeFactory) NewModel(ctx context.Context, apiKey string) (Model, error) {
	f.apiKeys = append(f.apiKeys, apiKey)
	if f.err != nil {
		return nil, f.err
	}
	return f.model, nil
}

type fakeAttacher struct {
	part  genai.Part
	kind  MediaKind
	calls int
}

func (a *fakeAttacher) Attach(ctx context.Context, post models.PostData) (genai.Part, MediaKind) {
	a.calls++
	return a.part, a.kind
}

func samplePost() models.PostData {
	return models.PostData{
		Username: "acme.gym",
		Caption:  "Great day #fitness #motivation",
		MediaURL: "https://cdn.example.com/1.jpg",
		Hashtags: []string{"#fitness", "#motivation"},
		Type:     models.PostTypeImage,
	}
}

func TestGenerateMissingCredential(t *testing.T) {
	factory := &fakeFactory{model: &fakeModel{}}
	attacher := &fakeAttacher{kind: MediaNone}
	g := NewGenerator("", factory, attacher, logging.Discard())

	_, err := g.Generate(context.Background(), samplePost(), models.BusinessProfile{Name: "B", APIKey: "   "})

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrMissingCredential))
	assert.Empty(t, factory.apiKeys, "model must not be created without a credential")
	assert.Equal(t, 0, attacher.calls)
}

func TestGenerateProfileKeyTakesPrecedence(t *testing.T) {
	factory := &fakeFactory{model: &fakeModel{reply: `["one comment"]`}}
	g := NewGenerator("env-key", factory, nil, logging.Discard())

	_, err := g.Generate(context.Background(), samplePost(), models.BusinessProfile{APIKey: "profile-key"})
	require.NoError(t, err)
	_, err = g.Generate(context.Background(), samplePost(), models.BusinessProfile{})
	require.NoError(t, err)

	assert.Equal(t, []string{"profile-key", "env-key"}, factory.apiKeys)
}

func TestGenerateWithMedia(t *testing.T) {
	model := &fakeModel{reply: "```json\n[\"a\",\"b\"]\n```"}
	image := genai.Blob{MIMEType: "image/jpeg", Data: []byte{0xff, 0xd8}}
	g := NewGenerator("env-key", &fakeFactory{model: model}, &fakeAttacher{part: image, kind: MediaImage}, logging.Discard())

	gen, err := g.Generate(context.Background(), samplePost(), models.BusinessProfile{Name: "ProteinCo", Tone: models.ToneHumorous})
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, gen.Comments)
	assert.Equal(t, MediaImage, gen.Media)
	require.Len(t, model.parts, 2)
	prompt, ok := model.parts[0].(genai.Text)
	require.True(t, ok)
	assert.Contains(t, string(prompt), "ProteinCo")
	assert.Equal(t, image, model.parts[1])
	assert.True(t, model.closed)
}

func TestGenerateTextOnly(t *testing.T) {
	model := &fakeModel{reply: "1. Nice post!\n2. Love it!\nx"}
	g := NewGenerator("env-key", &fakeFactory{model: model}, &fakeAttacher{kind: MediaNone}, logging.Discard())

	gen, err := g.Generate(context.Background(), samplePost(), models.BusinessProfile{})
	require.NoError(t, err)

	assert.Equal(t, []string{"Nice post!", "Love it!"}, gen.Comments)
	assert.Equal(t, MediaNone, gen.Media)
	assert.Len(t, model.parts, 1)
}

func TestGenerateProviderErrorIsGenerationFailed(t *testing.T) {
	model := &fakeModel{err: errors.New("googleapi: Error 429: quota exceeded")}
	g := NewGenerator("env-key", &fakeFactory{model: model}, nil, logging.Discard())

	gen, err := g.Generate(context.Background(), samplePost(), models.BusinessProfile{})

	assert.Nil(t, gen)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrGenerationFailed))

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "googleapi: Error 429: quota exceeded", appErr.Details())
	assert.True(t, model.closed)
}

func TestGenerateClientErrorIsGenerationFailed(t *testing.T) {
	g := NewGenerator("env-key", &fakeFactory{err: errors.New("bad key format")}, nil, logging.Discard())

	_, err := g.Generate(context.Background(), samplePost(), models.BusinessProfile{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrGenerationFailed))
}

func TestResponseText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []genai.Part{genai.Text(`["a",`), genai.Text(`"b"]`)}},
		}},
	}

	text, err := responseText(resp)
	require.NoError(t, err)
	assert.Equal(t, `["a","b"]`, text)

	_, err = responseText(&genai.GenerateContentResponse{})
	assert.Error(t, err)

	_, err = responseText(nil)
	assert.Error(t, err)
}
