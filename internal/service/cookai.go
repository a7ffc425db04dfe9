package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// jsonFence strips a ```json ... ``` block when the model wraps its answer.
var jsonFence = regexp.MustCompile("(?s)```json\\s*(.+?)\\s*```")

// CookAIService builds recipe prompts from the user's fridge contents and
// passes them through to a locally hosted Ollama generate endpoint. Recipe
// quality is entirely the model's problem; this service only guarantees the
// response is valid JSON.
type CookAIService struct {
	ollamaURL   string
	model       string
	numPredict  int
	client      *http.Client
	ingredients *IngredientService
}

func NewCookAIService(ollamaURL, model string, ingredients *IngredientService) *CookAIService {
	return &CookAIService{
		ollamaURL:   ollamaURL,
		model:       model,
		numPredict:  2000,
		client:      &http.Client{Timeout: 120 * time.Second},
		ingredients: ingredients,
	}
}

const basePrompt = `You are a professional culinary researcher and recipe recommendation expert.
Respond with JSON only. Return the JSON data with no extra commentary, and
always make sure the response is valid JSON.`

// SuggestRecipes asks for six dishes the user can cook from what they have.
func (s *CookAIService) SuggestRecipes(ctx context.Context, userID uuid.UUID) (json.RawMessage, error) {
	names, err := s.ingredients.Names(ctx, userID)
	if err != nil {
		return nil, err
	}
	available, _ := json.Marshal(names)

	prompt := fmt.Sprintf(`%s
Recommend exactly 6 dishes that can be cooked with the ingredients the user
currently has. Available ingredients: %s

Only recommend dishes that can realistically be cooked from the listed
ingredients. Reply in this exact JSON shape:
{
  "recipes": [
    {"food": "kimchi fried rice", "use_ingredients": ["kimchi", "rice"]}
  ]
}`, basePrompt, available)

	return s.callOllama(ctx, prompt)
}

// FoodRecipe asks for the detailed recipe of one previously suggested dish.
func (s *CookAIService) FoodRecipe(ctx context.Context, food string, useIngredients []string) (json.RawMessage, error) {
	ingredientsJSON, _ := json.Marshal(useIngredients)

	prompt := fmt.Sprintf(`%s
Provide the detailed cooking method for the requested dish.

Requested dish: %q
Available ingredients: %s

Write at least 10 concrete steps using the requested dish and the listed
ingredients. Reply in this exact JSON shape:
{
  "food": %q,
  "use_ingredients": %s,
  "steps": ["chop the onion finely", "beat the eggs and fold in the cheese"]
}`, basePrompt, food, ingredientsJSON, food, ingredientsJSON)

	return s.callOllama(ctx, prompt)
}

// QuickRecipe turns a free-form ingredient list into one dish cookable within
// 15 minutes, using only the ingredients the user typed.
func (s *CookAIService) QuickRecipe(ctx context.Context, chat string) (json.RawMessage, error) {
	prompt := fmt.Sprintf(`%s
Recommend exactly one simple dish that can be cooked within 15 minutes from
the ingredient list the user typed.

User input: %q

Use only the listed ingredients and never add others; not every ingredient has
to be used. Describe the cooking steps in detail. If the input is unrelated to
food ingredients, reply with {"error": "please enter food ingredients"}.
Otherwise reply in this exact JSON shape:
{
  "food": "cheese omelette",
  "use_ingredients": ["egg", "cheese", "milk"],
  "steps": ["beat the eggs with the cheese and milk", "cook over medium-low heat and fold"]
}`, basePrompt, chat)

	return s.callOllama(ctx, prompt)
}

// SearchRecipe looks up the recipe for a dish the user names directly,
// independent of their fridge contents.
func (s *CookAIService) SearchRecipe(ctx context.Context, chat string) (json.RawMessage, error) {
	prompt := fmt.Sprintf(`%s
Provide the exact recipe for the dish the user named. Cover only that dish;
skip recommendations and commentary.

Dish name: %q

Include the ingredients with amounts, detailed step-by-step instructions of at
least 300 characters in total, and one tip. If the input is not a dish name or
contains inappropriate content, reply with
{"error": "please enter a valid dish name"}.
Otherwise reply in this exact JSON shape:
{
  "food": "doenjang stew",
  "use_ingredients": [
    {"name": "doenjang", "amount": "2 tbsp"},
    {"name": "tofu", "amount": "half a block"}
  ],
  "steps": ["bring the anchovy stock to a boil", "stir in the doenjang"],
  "tip": "add garlic to the stock"
}`, basePrompt, chat)

	return s.callOllama(ctx, prompt)
}

type ollamaRequest struct {
	Model   string         `json:"model"`
	Prompt  string         `json:"prompt"`
	Stream  bool           `json:"stream"`
	Options map[string]int `json:"options"`
}

type ollamaResponse struct {
	Response string `json:"response"`
}

func (s *CookAIService) callOllama(ctx context.Context, prompt string) (json.RawMessage, error) {
	payload, err := json.Marshal(ollamaRequest{
		Model:   s.model,
		Prompt:  prompt,
		Stream:  false,
		Options: map[string]int{"num_predict": s.numPredict},
	})
	if err != nil {
		return nil, ErrUnexpected.Wrap(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.ollamaURL, bytes.NewReader(payload))
	if err != nil {
		return nil, ErrUnexpected.Wrap(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, ErrExternal.Wrap(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, ErrExternal.Wrap(fmt.Errorf("ollama returned %d: %s", resp.StatusCode, body))
	}

	var out ollamaResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, ErrExternal.Wrap(err)
	}

	text := strings.TrimSpace(out.Response)
	if text == "" {
		return nil, ErrExternal.Wrap(fmt.Errorf("empty model response"))
	}
	if m := jsonFence.FindStringSubmatch(text); m != nil {
		text = strings.TrimSpace(m[1])
	}
	if !json.Valid([]byte(text)) {
		return nil, ErrExternal.Wrap(fmt.Errorf("model response is not valid JSON: %.120s", text))
	}
	return json.RawMessage(text), nil
}
