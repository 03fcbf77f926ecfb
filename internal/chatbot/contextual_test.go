package chatbot

import (
	"strings"
	"testing"
)

func TestContextualResponse_ClientInquiryNeedsBothGroups(t *testing.T) {
	// One token from {assistant, help, need} AND one from
	// {project, build, develop}.
	got := ContextualResponse("I need someone to build an app")
	if got == "" {
		t.Fatal("expected client-inquiry rule to fire")
	}
	if !strings.Contains(got, "carlos@cherrera.dev") {
		t.Error("contextual reply should embed contact details")
	}
}

func TestContextualResponse_SingleGroupIsNotEnough(t *testing.T) {
	inputs := []string{
		"I need a coffee",           // first group only
		"that was a fun experience", // neither
	}
	for _, input := range inputs {
		if got := ContextualResponse(input); got != "" {
			t.Errorf("ContextualResponse(%q) fired unexpectedly: %q", input, got)
		}
	}
}

func TestContextualResponse_PricingRule(t *testing.T) {
	got := ContextualResponse("what would something like this cost")
	if got == "" || !strings.Contains(got, "Rates") {
		t.Fatalf("expected pricing rule, got %q", got)
	}
}

func TestContextualResponse_FixedRuleOrder(t *testing.T) {
	rules := []contextualRule{
		{groups: [][]string{{"alpha"}}, response: "first"},
		{groups: [][]string{{"alpha"}}, response: "second"},
	}
	if got := contextualResponse("alpha", rules); got != "first" {
		t.Errorf("expected first matching rule to win, got %q", got)
	}
}
