// Package render renders template content with the Liquid language.
package render

import (
	"fmt"
	"html"
	"net/url"
	"strings"
	"sync"

	"github.com/osteele/liquid"
)

// maxCached bounds the parsed-template cache.
const maxCached = 512

// Liquid renders Liquid templates. Parsed templates are cached by source
// text. It is safe for concurrent use.
type Liquid struct {
	engine *liquid.Engine

	mu    sync.RWMutex
	cache map[string]*liquid.Template
}

// NewLiquid returns a renderer with the listserv filters registered.
func NewLiquid() *Liquid {
	r := &Liquid{engine: liquid.NewEngine(), cache: make(map[string]*liquid.Template)}
	r.registerFilters()
	return r
}

func (r *Liquid) registerFilters() {
	// {{ first_name | default: "Friend" }}
	r.engine.RegisterFilter("default", func(value interface{}, defaultVal string) interface{} {
		if value == nil {
			return defaultVal
		}
		if s := fmt.Sprintf("%v", value); s == "" || s == "<nil>" {
			return defaultVal
		}
		return value
	})

	r.engine.RegisterFilter("capitalize", func(s string) string {
		if s == "" {
			return s
		}
		return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
	})

	r.engine.RegisterFilter("truncate", func(s string, length int) string {
		if len(s) <= length {
			return s
		}
		if length <= 3 {
			return s[:length]
		}
		return s[:length-3] + "..."
	})

	r.engine.RegisterFilter("urlencode", url.QueryEscape)
	r.engine.RegisterFilter("escape", html.EscapeString)

	r.engine.RegisterFilter("email_domain", func(email string) string {
		if _, domain, ok := strings.Cut(email, "@"); ok {
			return domain
		}
		return ""
	})
}

// Parse reports syntax errors in content.
func (r *Liquid) Parse(content string) error {
	_, err := r.parse(content)
	return err
}

// Render renders content with vars bound as top-level variables.
func (r *Liquid) Render(content string, vars map[string]any) (string, error) {
	tpl, err := r.parse(content)
	if err != nil {
		return "", err
	}
	out, err := tpl.RenderString(vars)
	if err != nil {
		return "", err
	}
	return out, nil
}

func (r *Liquid) parse(content string) (*liquid.Template, error) {
	r.mu.RLock()
	tpl, ok := r.cache[content]
	r.mu.RUnlock()
	if ok {
		return tpl, nil
	}

	tpl, err := r.engine.ParseString(content)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	if len(r.cache) >= maxCached {
		r.cache = make(map[string]*liquid.Template)
	}
	r.cache[content] = tpl
	r.mu.Unlock()
	return tpl, nil
}
