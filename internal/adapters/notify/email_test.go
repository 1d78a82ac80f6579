package notify

import (
	"strings"
	"testing"
)

func TestRenderHTMLBodyEscapes(t *testing.T) {
	msg := Message{
		Description: `<script>alert("x")</script>`,
		Fields: []Field{
			{Name: "Pass<b>word", Value: `p@ss&"<>'`},
		},
	}

	body := renderHTMLBody(msg)
	if strings.Contains(body, "<script>") {
		t.Errorf("description markup must be escaped: %q", body)
	}
	if !strings.Contains(body, "&lt;script&gt;") {
		t.Errorf("expected escaped description, got %q", body)
	}
	if !strings.Contains(body, "Pass&lt;b&gt;word") {
		t.Errorf("expected escaped field name, got %q", body)
	}
	if !strings.Contains(body, "p@ss&amp;&#34;&lt;&gt;&#39;") {
		t.Errorf("expected escaped field value, got %q", body)
	}
}

func TestRenderHTMLBodyStructure(t *testing.T) {
	msg := Message{
		Description: "A temporary admin password has been generated.",
		Fields: []Field{
			{Name: "Valid For", Value: "24 hours"},
		},
	}

	body := renderHTMLBody(msg)
	if !strings.HasPrefix(body, "<p>A temporary admin password") {
		t.Errorf("expected a description paragraph first, got %q", body)
	}
	if !strings.Contains(body, "<li><strong>Valid For:</strong> 24 hours</li>") {
		t.Errorf("expected a list item per field, got %q", body)
	}

	if got := renderHTMLBody(Message{}); got != "" {
		t.Errorf("empty message must render nothing, got %q", got)
	}
}
