package rvlang

type Precedence uint8

const (
	PrecNone       Precedence = iota
	PrecAssignment            // =
	PrecOr                    // or
	PrecAnd                   // and
	PrecEquality              // == !=
	PrecComparison            // < > <= >=
	PrecAddSub                // + -
	PrecMulDiv                // * /
	PrecUnary                 // ! -
	PrecCall                  // . ()
	PrecPrimary
)

type handler uint8

const (
	noHandler handler = iota
	groupHandler
	unaryHandler
	binaryHandler
	numberHandler
	literalHandler
)

type parseRule struct {
	prefix     handler
	infix      handler
	precedence Precedence
}

// kinds without an entry have neither handler and PrecNone
var rules = [numTokenKinds]parseRule{
	TokenLParen:       {groupHandler, noHandler, PrecNone},
	TokenMinus:        {unaryHandler, binaryHandler, PrecAddSub},
	TokenPlus:         {noHandler, binaryHandler, PrecAddSub},
	TokenSlash:        {noHandler, binaryHandler, PrecMulDiv},
	TokenAsterisk:     {noHandler, binaryHandler, PrecMulDiv},
	TokenBang:         {unaryHandler, noHandler, PrecNone},
	TokenBangEqual:    {noHandler, binaryHandler, PrecEquality},
	TokenDoubleEqual:  {noHandler, binaryHandler, PrecEquality},
	TokenGreater:      {noHandler, binaryHandler, PrecComparison},
	TokenGreaterEqual: {noHandler, binaryHandler, PrecComparison},
	TokenLess:         {noHandler, binaryHandler, PrecComparison},
	TokenLessEqual:    {noHandler, binaryHandler, PrecComparison},
	TokenNumber:       {numberHandler, noHandler, PrecNone},
	TokenFalse:        {literalHandler, noHandler, PrecNone},
	TokenNone:         {literalHandler, noHandler, PrecNone},
	TokenTrue:         {literalHandler, noHandler, PrecNone},
}

func getRule(kind TokenKind) parseRule {
	if kind >= numTokenKinds {
		return parseRule{}
	}
	return rules[kind]
}
