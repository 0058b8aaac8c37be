package validation

import (
	"testing"

	"github.com/robokitlab/catalog-api/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProductInput() dto.ProductInput {
	return dto.ProductInput{
		Slug:             "servo-sg90",
		Name:             "Servo SG90",
		ShortDescription: "A small hobby servo for robotics kits",
	}
}

func TestStruct_ProductInput(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*dto.ProductInput)
		wantField string
	}{
		{
			name:   "valid input passes",
			mutate: func(p *dto.ProductInput) {},
		},
		{
			name:      "uppercase slug rejected",
			mutate:    func(p *dto.ProductInput) { p.Slug = "Servo-SG90" },
			wantField: "slug",
		},
		{
			name:      "slug with spaces rejected",
			mutate:    func(p *dto.ProductInput) { p.Slug = "servo sg90" },
			wantField: "slug",
		},
		{
			name:      "single character slug rejected",
			mutate:    func(p *dto.ProductInput) { p.Slug = "s" },
			wantField: "slug",
		},
		{
			name:      "missing slug rejected",
			mutate:    func(p *dto.ProductInput) { p.Slug = "" },
			wantField: "slug",
		},
		{
			name:      "short description below minimum rejected",
			mutate:    func(p *dto.ProductInput) { p.ShortDescription = "tiny" },
			wantField: "short_description",
		},
		{
			name:      "single character name rejected",
			mutate:    func(p *dto.ProductInput) { p.Name = "x" },
			wantField: "name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validProductInput()
			tt.mutate(&input)

			verr := Struct(input)
			if tt.wantField == "" {
				assert.Nil(t, verr)
				return
			}
			require.NotNil(t, verr)
			assert.Contains(t, verr.Fields, tt.wantField)
		})
	}
}

func TestStruct_ChildInputs(t *testing.T) {
	t.Run("pdf kind must be a known value", func(t *testing.T) {
		verr := Struct(dto.PdfInput{Title: "Datasheet", StoragePath: "pdfs/x.pdf", Kind: "spreadsheet"})
		require.NotNil(t, verr)
		assert.Contains(t, verr.Fields, "kind")
	})

	t.Run("pdf kind may be omitted", func(t *testing.T) {
		verr := Struct(dto.PdfInput{Title: "Datasheet", StoragePath: "pdfs/x.pdf"})
		assert.Nil(t, verr)
	})

	t.Run("model format must be a known value", func(t *testing.T) {
		verr := Struct(dto.ModelInput{Title: "Chassis", StoragePath: "models/chassis.step", Format: "step"})
		require.NotNil(t, verr)
		assert.Contains(t, verr.Fields, "format")
	})

	t.Run("youtube url must parse", func(t *testing.T) {
		verr := Struct(dto.YoutubeInput{Title: "Assembly video", YoutubeURL: "not a url"})
		require.NotNil(t, verr)
		assert.Contains(t, verr.Fields, "youtube_url")
	})

	t.Run("guide estimate must be positive", func(t *testing.T) {
		minutes := -5
		verr := Struct(dto.GuideInput{Slug: "wiring", Title: "Wiring guide", EstMinutes: &minutes})
		require.NotNil(t, verr)
		assert.Contains(t, verr.Fields, "est_minutes")
	})
}

func TestBoolFromForm(t *testing.T) {
	assert.True(t, BoolFromForm("true"))
	assert.False(t, BoolFromForm("TRUE"))
	assert.False(t, BoolFromForm("1"))
	assert.False(t, BoolFromForm("on"))
	assert.False(t, BoolFromForm(""))
}

func TestIntFromForm(t *testing.T) {
	n, err := IntFromForm(" 42 ")
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, 42, *n)

	n, err = IntFromForm("")
	require.NoError(t, err)
	assert.Nil(t, n)

	_, err = IntFromForm("forty")
	assert.Error(t, err)
}

func TestIsSlug(t *testing.T) {
	assert.True(t, IsSlug("dc-motor-2"))
	assert.False(t, IsSlug("a"))
	assert.False(t, IsSlug("DC-Motor"))
	assert.False(t, IsSlug("motor_2"))
	assert.False(t, IsSlug(""))
}
