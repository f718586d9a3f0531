package html

import "testing"

func TestTokenizer_SimpleStartTag(t *testing.T) {
	tokenizer := NewTokenizer("<div>")
	token := tokenizer.NextToken()
	if token.Type != TokenStartTag {
		t.Errorf("expected TokenStartTag, got %v", token.Type)
	}
	if token.TagName != "div" {
		t.Errorf("expected tag name 'div', got '%s'", token.TagName)
	}
	if token.Style != "" {
		t.Errorf("expected empty style, got '%s'", token.Style)
	}
}

func TestTokenizer_TagWithStyle(t *testing.T) {
	tokenizer := NewTokenizer(`<h1 style="color: red; x: 50; y: 50;">`)
	token := tokenizer.NextToken()
	if token.TagName != "h1" {
		t.Errorf("expected tag name 'h1', got '%s'", token.TagName)
	}
	if token.Style != `style="color: red; x: 50; y: 50;"` {
		t.Errorf("unexpected style string '%s'", token.Style)
	}
}

func TestTokenizer_ExtraFieldsKeptInStyle(t *testing.T) {
	tokenizer := NewTokenizer("<p\tid=a   class=b\n>")
	token := tokenizer.NextToken()
	if token.TagName != "p" {
		t.Errorf("expected tag name 'p', got '%s'", token.TagName)
	}
	if token.Style != "id=a   class=b" {
		t.Errorf("expected verbatim attribute string, got '%s'", token.Style)
	}
}

func TestTokenizer_CompleteSequence(t *testing.T) {
	tokenizer := NewTokenizer("<div>Hello</div>")
	token1 := tokenizer.NextToken()
	if token1.Type != TokenStartTag || token1.TagName != "div" {
		t.Error("expected start tag 'div'")
	}
	token2 := tokenizer.NextToken()
	if token2.Type != TokenText || token2.Text != "Hello" {
		t.Error("expected text 'Hello'")
	}
	token3 := tokenizer.NextToken()
	if token3.Type != TokenEndTag || token3.TagName != "div" {
		t.Error("expected end tag 'div'")
	}
	token4 := tokenizer.NextToken()
	if token4.Type != TokenEOF {
		t.Error("expected EOF")
	}
	if tokenizer.NextToken().Type != TokenEOF {
		t.Error("expected EOF to repeat")
	}
}

func TestTokenizer_Offsets(t *testing.T) {
	tokenizer := NewTokenizer("<a>hi</a>")
	want := []int{0, 3, 5}
	for i, w := range want {
		if got := tokenizer.NextToken().Offset; got != w {
			t.Errorf("token %d: expected offset %d, got %d", i, w, got)
		}
	}
}

func TestTokenizer_WhitespaceTextDropped(t *testing.T) {
	tokenizer := NewTokenizer("<a>\n  <b> x </b>\n</a>\n")
	var types []TokenType
	for tok := range tokenizer.Tokens() {
		types = append(types, tok.Type)
	}
	want := []TokenType{TokenStartTag, TokenStartTag, TokenText, TokenEndTag, TokenEndTag}
	if len(types) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(types), types)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("token %d: expected %v, got %v", i, want[i], types[i])
		}
	}
}

func TestTokenizer_TextKeptVerbatim(t *testing.T) {
	tokenizer := NewTokenizer("<p>  Hello,   World! </p>")
	tokenizer.NextToken()
	token := tokenizer.NextToken()
	if token.Text != "  Hello,   World! " {
		t.Errorf("expected verbatim text, got %q", token.Text)
	}
}

func TestTokenizer_Comments(t *testing.T) {
	tokenizer := NewTokenizer("<!DOCTYPE html><!-- a > b --><?xml version='1.0'?><p>")
	for i := 0; i < 3; i++ {
		if tok := tokenizer.NextToken(); tok.Type != TokenComment {
			t.Fatalf("token %d: expected comment, got %v", i, tok.Type)
		}
	}
	token := tokenizer.NextToken()
	if token.Type != TokenStartTag || token.TagName != "p" {
		t.Errorf("expected start tag 'p' after comments, got %v '%s'", token.Type, token.TagName)
	}
}

func TestTokenizer_UnterminatedComment(t *testing.T) {
	tokenizer := NewTokenizer("<!-- never closed <p>")
	token := tokenizer.NextToken()
	if token.Type != TokenComment {
		t.Fatalf("expected comment, got %v", token.Type)
	}
	if tokenizer.NextToken().Type != TokenEOF {
		t.Error("expected comment to swallow the rest of the input")
	}
}

func TestTokenizer_SelfClosing(t *testing.T) {
	tokenizer := NewTokenizer("<br/><img x: 4 />")
	br := tokenizer.NextToken()
	if br.TagName != "br" || !br.SelfClosing {
		t.Errorf("expected self-closing br, got %+v", br)
	}
	img := tokenizer.NextToken()
	if img.TagName != "img" || !img.SelfClosing || img.Style != "x: 4" {
		t.Errorf("expected self-closing img with style 'x: 4', got %+v", img)
	}
}

func TestTokenizer_EmptyTagBody(t *testing.T) {
	tokenizer := NewTokenizer("<>< >")
	for i := 0; i < 2; i++ {
		token := tokenizer.NextToken()
		if token.Type != TokenStartTag || token.TagName != "" {
			t.Errorf("token %d: expected nameless start tag, got %+v", i, token)
		}
	}
}

func TestTokenizer_UnterminatedTag(t *testing.T) {
	tokenizer := NewTokenizer("<a>text<b x:1")
	tokenizer.NextToken()
	tokenizer.NextToken()
	token := tokenizer.NextToken()
	if token.Type != TokenStartTag || token.TagName != "b" || token.Style != "x:1" {
		t.Errorf("expected best-effort start tag 'b', got %+v", token)
	}
	if tokenizer.NextToken().Type != TokenEOF {
		t.Error("expected EOF")
	}
}

func TestTokenizer_StrayGreaterThanIsText(t *testing.T) {
	tokenizer := NewTokenizer("<a>1 > 0</a>")
	tokenizer.NextToken()
	token := tokenizer.NextToken()
	if token.Type != TokenText || token.Text != "1 > 0" {
		t.Errorf("expected text '1 > 0', got %+v", token)
	}
}

func TestTokenizer_TokensStopsEarly(t *testing.T) {
	tokenizer := NewTokenizer("<a><b><c>")
	count := 0
	for range tokenizer.Tokens() {
		count++
		if count == 2 {
			break
		}
	}
	token := tokenizer.NextToken()
	if token.TagName != "c" {
		t.Errorf("expected tokenizer to resume at 'c', got '%s'", token.TagName)
	}
}
