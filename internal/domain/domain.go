package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDomain is returned when a domain identifier is not in the catalogue.
var ErrUnknownDomain = errors.New("unknown domain")

// Domain identifies a topic domain served by the session service.
type Domain string

const (
	Go    Domain = "go"
	K8s   Domain = "k8s"
	Linux Domain = "linux"
)

// info holds the display metadata for a domain.
type info struct {
	title string
	theme string
	blurb string
}

var catalogue = map[Domain]info{
	Go:    {title: "Gopardy", theme: "domain-go", blurb: "Go language & runtime"},
	K8s:   {title: "Kuberpardy", theme: "domain-k8s", blurb: "Kubernetes objects & ops"},
	Linux: {title: "Jeolinux", theme: "domain-linux", blurb: "Linux systems & shell"},
}

// All returns the fixed set of domains in display order.
func All() []Domain {
	return []Domain{Go, K8s, Linux}
}

// Parse resolves a domain identifier, ignoring case and surrounding space.
func Parse(s string) (Domain, error) {
	d := Domain(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := catalogue[d]; !ok {
		return "", fmt.Errorf("%w: %q (want one of go, k8s, linux)", ErrUnknownDomain, s)
	}
	return d, nil
}

// Valid reports whether d is part of the catalogue.
func (d Domain) Valid() bool {
	_, ok := catalogue[d]
	return ok
}

// Title returns the game title shown while playing, e.g. "Gopardy".
func (d Domain) Title() string {
	if i, ok := catalogue[d]; ok {
		return i.title
	}
	return string(d)
}

// ResultsTitle returns the title shown on the results screen.
func (d Domain) ResultsTitle() string {
	return d.Title() + " Results"
}

// Theme returns the visual theme identifier for the domain.
func (d Domain) Theme() string {
	return catalogue[d].theme
}

// Blurb returns a one-line description for the landing screen.
func (d Domain) Blurb() string {
	return catalogue[d].blurb
}

func (d Domain) String() string {
	return string(d)
}
