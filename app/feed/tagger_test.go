package feed

import (
	"reflect"
	"testing"

	"github.com/lysyi3m/ai-digest/app/registry"
)

func TestTaggerDetect(t *testing.T) {
	tagger := NewTagger(registry.Default().Organizations())

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", []string{}},
		{"no match", "Weather report for the weekend", []string{}},
		{"single", "Anthropic ships a new model", []string{"Anthropic"}},
		{"case insensitive", "NVIDIA earnings beat expectations", []string{"NVIDIA"}},
		{"keyword alias", "Claude learns to use tools", []string{"Anthropic"}},
		{"registry order not text order", "Claude and ChatGPT compared", []string{"OpenAI", "Anthropic"}},
		{"deduplicated", "OpenAI, OpenAI and more GPT", []string{"OpenAI"}},
		{"chinese keyword", "阿里发布通义千问新版本", []string{"阿里巴巴"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tagger.Detect(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Detect(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestTaggerCapsAtFive(t *testing.T) {
	tagger := NewTagger(registry.Default().Organizations())

	text := "OpenAI Google Anthropic Meta Microsoft NVIDIA Amazon"
	got := tagger.Detect(text)

	want := []string{"OpenAI", "Google", "Anthropic", "Meta", "Microsoft"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestTaggerCustomRegistry(t *testing.T) {
	orgs := []registry.Organization{
		{Name: "A", Keywords: []string{"alpha"}},
		{Name: "B", Keywords: []string{"bravo"}},
		{Name: "C", Keywords: []string{"charlie"}},
		{Name: "D", Keywords: []string{"delta"}},
		{Name: "E", Keywords: []string{"echo"}},
		{Name: "F", Keywords: []string{"foxtrot"}},
		{Name: "G", Keywords: []string{"GOLF CLUB"}},
	}
	tagger := NewTagger(orgs)

	got := tagger.Detect("alpha bravo charlie delta echo foxtrot golf club")
	want := []string{"A", "B", "C", "D", "E"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}

	got = tagger.Detect("the Golf Club")
	if !reflect.DeepEqual(got, []string{"G"}) {
		t.Errorf("Expected upper-case keyword to match case-insensitively, got %v", got)
	}
}

func TestTaggerDeterministic(t *testing.T) {
	tagger := NewTagger(registry.Default().Organizations())
	text := "Microsoft Copilot now runs on NVIDIA Blackwell via Azure"

	first := tagger.Detect(text)
	for i := 0; i < 10; i++ {
		if got := tagger.Detect(text); !reflect.DeepEqual(got, first) {
			t.Fatalf("Run %d returned %v, expected %v", i, got, first)
		}
	}
}
