// pkg/parser/parser.go
package parser

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/NivBraz/anagram-service/pkg/anagram"
)

type Parser struct{}

func New() *Parser {
	return &Parser{}
}

// ParseWords extracts words from HTML content
func (p *Parser) ParseWords(content []byte) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}

	// if its script or style ignore
	doc.Find("script, style").Remove()

	var words []string
	for _, word := range strings.Fields(doc.Text()) {
		if hasLetters(word) {
			words = append(words, word)
		}
	}
	return words, nil
}

// ParseWordBank extracts one word per line, skipping blank lines and comments
func (p *Parser) ParseWordBank(content []byte) ([]string, error) {
	return parseLines(content)
}

// ParseQueries reads one query per line, with the same rules as a word bank
func (p *Parser) ParseQueries(content []byte) ([]string, error) {
	return parseLines(content)
}

func parseLines(content []byte) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(content))

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func hasLetters(word string) bool {
	_, n := anagram.Fingerprint(word)
	return n > 0
}
