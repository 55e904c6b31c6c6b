package syntax

// ExpressionString renders an AST back into Alang source using minimal
// parenthesization: a child is wrapped in parens only when its operator
// binds more loosely than the position it appears in requires. Applying
// ExpressionString to the result of Parse and re-parsing that string is
// idempotent and yields an equal AST.
func ExpressionString(n *Node) string {
	return printNode(n, 0)
}

func precedenceOf(k NodeKind) int {
	switch k {
	case NodeUnion:
		return 1
	case NodeDifference:
		return 2
	case NodeIntersection:
		return 3
	case NodeConcatenation:
		return 4
	case NodeOption, NodeKleeneStar, NodeKleenePlus, NodeComplement:
		return 5
	default: // Symbol, Wildcard, EmptyLang
		return 6
	}
}

// printNode renders n, parenthesizing it if its own precedence is lower
// than minPrec (the precedence required by the position it occupies).
func printNode(n *Node, minPrec int) string {
	prec := precedenceOf(n.Kind)

	var s string
	switch n.Kind {
	case NodeSymbol:
		s = n.Text
	case NodeWildcard:
		s = "."
	case NodeEmptyLang:
		s = "()"
	case NodeUnion:
		s = printNode(n.Left, prec) + "|" + printNode(n.Right, prec+1)
	case NodeDifference:
		s = printNode(n.Left, prec) + "-" + printNode(n.Right, prec+1)
	case NodeIntersection:
		s = printNode(n.Left, prec) + "&" + printNode(n.Right, prec+1)
	case NodeConcatenation:
		left := printNode(n.Left, prec)
		right := printNode(n.Right, prec+1)
		if left != "" && right != "" && !reserved(rune(left[len(left)-1])) && !reserved(rune(right[0])) {
			// A bare juxtaposition of two symbol characters would re-lex
			// as one longer symbol; a space keeps them distinct tokens.
			s = left + " " + right
		} else {
			s = left + right
		}
	case NodeOption:
		s = printNode(n.Left, prec) + "?"
	case NodeKleeneStar:
		s = printNode(n.Left, prec) + "*"
	case NodeKleenePlus:
		s = printNode(n.Left, prec) + "+"
	case NodeComplement:
		s = printNode(n.Left, prec) + "~"
	}

	if prec < minPrec {
		return "(" + s + ")"
	}
	return s
}
