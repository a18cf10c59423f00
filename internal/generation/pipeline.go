package generation

import (
	"context"
	"errors"
	"log"

	"github.com/culinaryco/menucraft/backend/internal/types"
)

// MenuResult is the outcome of one menu generation run. Fallback reports
// whether the deterministic templates were used instead of model output.
type MenuResult struct {
	Items    []types.GeneratedMenuItem `json:"items"`
	Fallback bool                      `json:"fallback"`
}

// CocktailResult is the outcome of one cocktail generation run.
type CocktailResult struct {
	Cocktails []types.GeneratedCocktail `json:"cocktails"`
	Fallback  bool                      `json:"fallback"`
}

// Pipeline runs one generation request end to end: prompt composition, the
// completion call, repair, normalization, and fallback. Each run is
// independent and stateless; concurrent calls need no coordination.
//
// Failure policy: both the menu item and cocktail paths fall back to
// deterministic templated content on transport or parse failure, so callers
// always receive a non-empty list. A hard error never reaches the end user.
type Pipeline struct {
	client CompletionClient
}

// NewPipeline creates a new Pipeline instance with an injected completion
// client.
func NewPipeline(client CompletionClient) *Pipeline {
	return &Pipeline{client: client}
}

// GenerateMenuItems produces normalized menu items for the request. The
// returned item list is never empty.
func (p *Pipeline) GenerateMenuItems(ctx context.Context, req *types.MenuGenerationRequest) (*MenuResult, error) {
	systemPrompt, userPrompt := BuildMenuPrompt(req)

	raw, err := p.client.Complete(ctx, systemPrompt, userPrompt)
	if err != nil {
		log.Printf("[Pipeline] completion call failed, using fallback menu items: %v", err)
		return &MenuResult{Items: FallbackMenuItems(req.Context), Fallback: true}, nil
	}

	parsed, err := RepairAndParse(raw)
	if err != nil {
		if errors.Is(err, ErrUnparsableResponse) {
			log.Printf("[Pipeline] model response unparsable, using fallback menu items")
			return &MenuResult{Items: FallbackMenuItems(req.Context), Fallback: true}, nil
		}
		return nil, err
	}

	items := NormalizeMenuItems(parsed)
	if len(items) == 0 {
		log.Printf("[Pipeline] normalization produced no usable menu items, using fallback")
		return &MenuResult{Items: FallbackMenuItems(req.Context), Fallback: true}, nil
	}
	return &MenuResult{Items: items}, nil
}

// GenerateCocktails produces normalized cocktails for the request. The
// returned cocktail list is never empty.
func (p *Pipeline) GenerateCocktails(ctx context.Context, req *types.CocktailGenerationRequest) (*CocktailResult, error) {
	systemPrompt, userPrompt := BuildCocktailPrompt(req)

	raw, err := p.client.Complete(ctx, systemPrompt, userPrompt)
	if err != nil {
		log.Printf("[Pipeline] completion call failed, using fallback cocktails: %v", err)
		return &CocktailResult{Cocktails: FallbackCocktails(req.Context), Fallback: true}, nil
	}

	parsed, err := RepairAndParse(raw)
	if err != nil {
		if errors.Is(err, ErrUnparsableResponse) {
			log.Printf("[Pipeline] model response unparsable, using fallback cocktails")
			return &CocktailResult{Cocktails: FallbackCocktails(req.Context), Fallback: true}, nil
		}
		return nil, err
	}

	cocktails := NormalizeCocktails(parsed)
	if len(cocktails) == 0 {
		log.Printf("[Pipeline] normalization produced no usable cocktails, using fallback")
		return &CocktailResult{Cocktails: FallbackCocktails(req.Context), Fallback: true}, nil
	}
	return &CocktailResult{Cocktails: cocktails}, nil
}
