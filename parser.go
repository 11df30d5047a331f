package jsonccst

import "strings"

// bomPrefix is the UTF-8 byte-order mark. When present at the start of a
// document it is stripped before tokenizing and reattached verbatim as a
// prefix of the root node's leading trivia.
const bomPrefix = "\xef\xbb\xbf"

// parser builds a hierarchical CST directly from the token stream,
// attaching trivia to nodes as it goes rather than deferring it to a
// later pass. The comma-boundary rule: content up to and including the
// newline that follows a comma belongs to the left sibling's trailing
// trivia; content after that newline belongs to the right sibling's
// leading trivia, or the container's own interior-tail trivia if there
// is no right sibling.
type parser struct {
	lex    *lexer
	source string
}

func newParser(source string) *parser {
	return &parser{lex: newLexer(source), source: source}
}

// Parse parses src as JSONC and returns the root node. The root may be of
// any kind; ParseObject additionally requires it to be an object.
func Parse(src string) (Node, error) {
	p := newParser(src)
	return p.parseDocument()
}

// ParseObject parses src and requires the root value to be an object,
// returning a *ParseError if it is not.
func ParseObject(src string) (*ObjectNode, error) {
	root, err := Parse(src)
	if err != nil {
		return nil, err
	}
	obj, ok := root.(*ObjectNode)
	if !ok {
		return nil, &ParseError{Message: "root value is not an object", Offset: 0, Line: 1, Column: 1}
	}
	return obj, nil
}

func (p *parser) parseDocument() (Node, error) {
	var bom string
	if strings.HasPrefix(p.source, bomPrefix) {
		bom = bomPrefix
	}

	leading, err := p.lex.scanTrivia()
	if err != nil {
		return nil, err
	}
	leading = bom + leading

	tok, err := p.lex.next()
	if err != nil {
		return nil, err
	}

	root, err := p.parseValue(tok, leading, 0)
	if err != nil {
		return nil, err
	}

	trailing, err := p.lex.scanTrivia()
	if err != nil {
		return nil, err
	}
	end, err := p.lex.next()
	if err != nil {
		return nil, err
	}
	if end.Type != TokEOF {
		return nil, &ParseError{Message: "unexpected content after document value", Offset: end.Offset, Line: end.Line, Column: end.Column}
	}
	root.meta().trailingBeforeComma = trailing
	return root, nil
}

// parseValue parses the value starting at tok (already consumed from the
// lexer), attaching leading as its leading trivia. depth is the nesting
// depth of this value (root = 0), used by mutate.go as an indentation
// fallback when no sibling exists to copy layout from.
func (p *parser) parseValue(tok Token, leading string, depth int) (Node, error) {
	switch tok.Type {
	case TokString:
		return &StringNode{nodeMeta: nodeMeta{leading: leading}, Raw: tok.Text}, nil
	case TokNumber:
		return &NumberNode{nodeMeta: nodeMeta{leading: leading}, Raw: tok.Text}, nil
	case TokTrue, TokFalse:
		return &BoolNode{nodeMeta: nodeMeta{leading: leading}, Raw: tok.Text}, nil
	case TokNull:
		return &NullNode{nodeMeta: nodeMeta{leading: leading}}, nil
	case TokLBrace:
		return p.parseObject(leading, depth)
	case TokLBracket:
		return p.parseArray(leading, depth)
	case TokEOF:
		return nil, &ParseError{Message: "unexpected end of input, expected a value", Offset: tok.Offset, Line: tok.Line, Column: tok.Column}
	default:
		return nil, &ParseError{Message: "unexpected token, expected a value", Offset: tok.Offset, Line: tok.Line, Column: tok.Column}
	}
}

// splitAtNewline splits trivia at the first newline (inclusive): the rule
// is that everything up to and including the newline that follows a
// comma becomes trailing trivia of the left sibling, and everything after
// becomes leading trivia of the right sibling (or interior-tail trivia of
// the container, if there is no right sibling).
func splitAtNewline(trivia string) (before, after string) {
	idx := strings.IndexByte(trivia, '\n')
	if idx < 0 {
		return trivia, ""
	}
	return trivia[:idx+1], trivia[idx+1:]
}

func (p *parser) parseObject(leading string, depth int) (*ObjectNode, error) {
	obj := &ObjectNode{nodeMeta: nodeMeta{leading: leading}, Depth: depth}

	head, err := p.lex.scanTrivia()
	if err != nil {
		return nil, err
	}

	tok, err := p.lex.next()
	if err != nil {
		return nil, err
	}
	if tok.Type == TokRBrace {
		// No properties: the entire interior span (which may hold a
		// comment) is interior-head trivia of the empty object, since
		// there is no first child to carry it as leading trivia.
		obj.HeadTrivia = head
		return obj, nil
	}

	// head is the leading trivia of the first property: a node's leading
	// trivia runs from the end of the previous sibling (or the opening
	// brace/bracket), so for the first child that span and the
	// container's interior-head trivia are the same bytes.
	itemLeading := head
	for {
		if tok.Type != TokString {
			return nil, &ParseError{Message: "expected a property key string", Offset: tok.Offset, Line: tok.Line, Column: tok.Column}
		}
		prop := &PropertyNode{nodeMeta: nodeMeta{leading: itemLeading, parent: obj}}
		prop.Key = &StringNode{Raw: tok.Text}

		colonBefore, err := p.lex.scanTrivia()
		if err != nil {
			return nil, err
		}
		colonTok, err := p.lex.next()
		if err != nil {
			return nil, err
		}
		if colonTok.Type != TokColon {
			return nil, &ParseError{Message: "expected ':' after property key", Offset: colonTok.Offset, Line: colonTok.Line, Column: colonTok.Column}
		}
		colonAfter, err := p.lex.scanTrivia()
		if err != nil {
			return nil, err
		}
		valTok, err := p.lex.next()
		if err != nil {
			return nil, err
		}
		val, err := p.parseValue(valTok, "", depth+1)
		if err != nil {
			return nil, err
		}
		prop.ColonBefore = colonBefore
		prop.ColonAfter = colonAfter
		prop.Value = val
		val.meta().parent = prop

		afterVal, err := p.lex.scanTrivia()
		if err != nil {
			return nil, err
		}
		next, err := p.lex.next()
		if err != nil {
			return nil, err
		}

		switch next.Type {
		case TokComma:
			prop.trailingBeforeComma = afterVal
			prop.hasComma = true
			afterComma, err := p.lex.scanTrivia()
			if err != nil {
				return nil, err
			}
			before, after := splitAtNewline(afterComma)
			prop.trailingAfterComma = before
			obj.Properties = append(obj.Properties, prop)

			peekTok, err := p.lex.next()
			if err != nil {
				return nil, err
			}
			if peekTok.Type == TokRBrace {
				obj.TailTrivia = after
				return obj, nil
			}
			itemLeading = after
			tok = peekTok
			continue
		case TokRBrace:
			before, after := splitAtNewline(afterVal)
			prop.trailingBeforeComma = before
			obj.Properties = append(obj.Properties, prop)
			obj.TailTrivia = after
			return obj, nil
		default:
			return nil, &ParseError{Message: "expected ',' or '}' after property value", Offset: next.Offset, Line: next.Line, Column: next.Column}
		}
	}
}

func (p *parser) parseArray(leading string, depth int) (*ArrayNode, error) {
	arr := &ArrayNode{nodeMeta: nodeMeta{leading: leading}, Depth: depth}

	head, err := p.lex.scanTrivia()
	if err != nil {
		return nil, err
	}

	tok, err := p.lex.next()
	if err != nil {
		return nil, err
	}
	if tok.Type == TokRBracket {
		arr.HeadTrivia = head
		return arr, nil
	}

	itemLeading := head
	for {
		el, err := p.parseValue(tok, itemLeading, depth+1)
		if err != nil {
			return nil, err
		}

		afterVal, err := p.lex.scanTrivia()
		if err != nil {
			return nil, err
		}
		next, err := p.lex.next()
		if err != nil {
			return nil, err
		}

		m := el.meta()
		switch next.Type {
		case TokComma:
			m.trailingBeforeComma = afterVal
			m.hasComma = true
			afterComma, err := p.lex.scanTrivia()
			if err != nil {
				return nil, err
			}
			before, after := splitAtNewline(afterComma)
			m.trailingAfterComma = before
			m.parent = arr
			arr.Elements = append(arr.Elements, el)

			peekTok, err := p.lex.next()
			if err != nil {
				return nil, err
			}
			if peekTok.Type == TokRBracket {
				arr.TailTrivia = after
				return arr, nil
			}
			itemLeading = after
			tok = peekTok
			continue
		case TokRBracket:
			before, after := splitAtNewline(afterVal)
			m.trailingBeforeComma = before
			m.parent = arr
			arr.Elements = append(arr.Elements, el)
			arr.TailTrivia = after
			return arr, nil
		default:
			return nil, &ParseError{Message: "expected ',' or ']' after array element", Offset: next.Offset, Line: next.Line, Column: next.Column}
		}
	}
}
