// Package syntaxtree defines the read-only parse tree contract shared by the
// parser and the clause extractors, plus rule based queries over it.
//
// Extractors only depend on the Node interface, so a tree produced by any
// grammar can be fed to them once its node type implements Rule, Children
// and Text with the agreed rule names.
package syntaxtree

import (
	"strings"

	"github.com/shibukawa/sqlsegment/tokenizer"
)

// Node is a node of a parse tree
type Node interface {
	Rule() RuleName
	Children() []Node
	Text() string // matched source text
}

// RuleName identifies the grammar production a node was built from
type RuleName int

const (
	// Statement structure
	SELECT_STATEMENT RuleName = iota
	WITH_CLAUSE
	SELECT_CLAUSE
	FROM_CLAUSE
	WHERE_CLAUSE
	GROUP_BY_CLAUSE
	HAVING_CLAUSE
	ORDER_BY_CLAUSE
	LIMIT_CLAUSE

	// Clause items
	ORDER_BY_ITEM
	LIMIT_ROW_COUNT
	LIMIT_OFFSET

	// Expressions and literals
	NUMBER_LITERAL
	EXPR
	COLUMN_NAME
	PARAMETER_MARKER

	// Single token leaf
	TERMINAL
)

var ruleNames = map[RuleName]string{
	SELECT_STATEMENT: "SELECT_STATEMENT",
	WITH_CLAUSE:      "WITH_CLAUSE",
	SELECT_CLAUSE:    "SELECT_CLAUSE",
	FROM_CLAUSE:      "FROM_CLAUSE",
	WHERE_CLAUSE:     "WHERE_CLAUSE",
	GROUP_BY_CLAUSE:  "GROUP_BY_CLAUSE",
	HAVING_CLAUSE:    "HAVING_CLAUSE",
	ORDER_BY_CLAUSE:  "ORDER_BY_CLAUSE",
	LIMIT_CLAUSE:     "LIMIT_CLAUSE",
	ORDER_BY_ITEM:    "ORDER_BY_ITEM",
	LIMIT_ROW_COUNT:  "LIMIT_ROW_COUNT",
	LIMIT_OFFSET:     "LIMIT_OFFSET",
	NUMBER_LITERAL:   "NUMBER_LITERAL",
	EXPR:             "EXPR",
	COLUMN_NAME:      "COLUMN_NAME",
	PARAMETER_MARKER: "PARAMETER_MARKER",
	TERMINAL:         "TERMINAL",
}

// String returns string representation of RuleName
func (r RuleName) String() string {
	if name, ok := ruleNames[r]; ok {
		return name
	}

	return "UNKNOWN"
}

// PlaceholderIndex maps placeholder marker nodes to their 0-based position
// among all placeholders of a statement.
type PlaceholderIndex map[Node]int

// RuleNode is a node built from a grammar rule
type RuleNode struct {
	rule     RuleName
	text     string
	position tokenizer.Position
	children []Node
}

// NewRuleNode creates a rule node with explicit source text.
func NewRuleNode(rule RuleName, text string, position tokenizer.Position, children ...Node) *RuleNode {
	return &RuleNode{
		rule:     rule,
		text:     text,
		position: position,
		children: children,
	}
}

// NewRule creates a rule node whose text is the concatenation of its children's text.
// It is handy for building trees by hand.
func NewRule(rule RuleName, children ...Node) *RuleNode {
	var sb strings.Builder
	for _, child := range children {
		sb.WriteString(child.Text())
	}

	var position tokenizer.Position
	if len(children) > 0 {
		if p, ok := children[0].(interface{ Position() tokenizer.Position }); ok {
			position = p.Position()
		}
	}

	return NewRuleNode(rule, sb.String(), position, children...)
}

func (n *RuleNode) Rule() RuleName {
	return n.rule
}

func (n *RuleNode) Children() []Node {
	return n.children
}

func (n *RuleNode) Text() string {
	return n.text
}

func (n *RuleNode) Position() tokenizer.Position {
	return n.position
}

func (n *RuleNode) String() string {
	return n.rule.String() + ": " + n.text
}

// TerminalNode wraps a single token
type TerminalNode struct {
	token tokenizer.Token
}

// NewTerminal creates a leaf node for a token
func NewTerminal(token tokenizer.Token) *TerminalNode {
	return &TerminalNode{token: token}
}

// NewTerminalText creates a leaf node from text only
func NewTerminalText(text string) *TerminalNode {
	return &TerminalNode{token: tokenizer.Token{Type: tokenizer.OTHER, Value: text}}
}

func (n *TerminalNode) Rule() RuleName {
	return TERMINAL
}

func (n *TerminalNode) Children() []Node {
	return nil
}

func (n *TerminalNode) Text() string {
	return n.token.Value
}

func (n *TerminalNode) Position() tokenizer.Position {
	return n.token.Position
}

// Token returns the wrapped token
func (n *TerminalNode) Token() tokenizer.Token {
	return n.token
}

func (n *TerminalNode) String() string {
	return n.token.String()
}
