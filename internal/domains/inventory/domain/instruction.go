package domain

import "strings"

// Operation enumerates the instruction verbs the ledger understands.
type Operation string

const (
	OpSetStock Operation = "set-stock"
	OpAddStock Operation = "add-stock"
	OpOrder    Operation = "order"
)

// TokenPair carries one positional (SKU, amount) argument pair as raw tokens.
// Each pair is validated independently during execution.
type TokenPair struct {
	SKU    string
	Amount string
}

// Instruction is one parsed ledger line.
type Instruction struct {
	Op       Operation
	OrderRef string // only for OpOrder; opaque, surfaces in diagnostics
	Pairs    []TokenPair
}

// ParseInstruction tokenizes line on whitespace and resolves the operation.
// A first token outside the known set, including the empty token of a blank
// line, yields UnknownOperationError. For order instructions the first
// argument is captured as the order reference and pairing starts after it.
// A trailing token with no partner is dropped without being validated.
func ParseInstruction(line string) (Instruction, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return Instruction{}, UnknownOperationError{Name: ""}
	}
	op := Operation(tokens[0])
	args := tokens[1:]
	switch op {
	case OpSetStock, OpAddStock:
		return Instruction{Op: op, Pairs: pairTokens(args)}, nil
	case OpOrder:
		instr := Instruction{Op: op}
		if len(args) > 0 {
			instr.OrderRef = args[0]
			instr.Pairs = pairTokens(args[1:])
		}
		return instr, nil
	default:
		return Instruction{}, UnknownOperationError{Name: tokens[0]}
	}
}

func pairTokens(args []string) []TokenPair {
	if len(args) < 2 {
		return nil
	}
	pairs := make([]TokenPair, 0, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		pairs = append(pairs, TokenPair{SKU: args[i], Amount: args[i+1]})
	}
	return pairs
}
