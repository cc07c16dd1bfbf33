package slots

import (
	"github.com/shopspring/decimal"

	"github.com/coinkrazygaming/social-coin-sub000/pkg/models"
)

// Evaluate scores a drawn grid against the machine's paylines and scatter
// conditions. It returns the total payout, the winning lines, and whether a
// scatter condition fired (the bonus trigger).
//
// Line rule: a run starts at reel 0 and continues while each cell holds the
// line's base symbol or a wild. The base symbol is the first symbol on the
// line that is neither a wild nor a scatter symbol; leading wilds count
// toward its run. A line made entirely of wilds scores as a run of the wild
// symbol itself, which pays only if the paytable has a condition for it.
// When several conditions are satisfied on one line, only the best-paying
// one pays.
func Evaluate(m *models.Machine, grid models.Grid, bet decimal.Decimal) (decimal.Decimal, []models.WinLine, bool) {
	total := decimal.Zero
	var wins []models.WinLine

	for _, line := range m.Paylines {
		if !line.Active {
			continue
		}
		if win, ok := evaluateLine(m, grid, line, bet); ok {
			total = total.Add(win.Payout)
			wins = append(wins, win)
		}
	}

	scatterTotal, scatterWins := evaluateScatters(m, grid, bet)
	total = total.Add(scatterTotal)
	wins = append(wins, scatterWins...)

	return total, wins, len(scatterWins) > 0
}

func evaluateLine(m *models.Machine, grid models.Grid, line models.Payline, bet decimal.Decimal) (models.WinLine, bool) {
	symbols := make([]string, len(line.Cells))
	for i, c := range line.Cells {
		symbols[i] = grid.At(c)
	}

	base := baseSymbol(m, symbols)
	if base == "" {
		return models.WinLine{}, false
	}

	run := 0
	for _, id := range symbols {
		if id == base || m.IsWild(id) {
			run++
		} else {
			break
		}
	}

	cond, ok := bestCondition(m, base, run, false)
	if !ok {
		return models.WinLine{}, false
	}

	sym, _ := m.Symbol(base)
	return models.WinLine{
		PaylineID: line.ID,
		SymbolID:  base,
		Count:     run,
		Payout:    cond.Payout.Mul(bet).Mul(sym.Multiplier),
	}, true
}

// baseSymbol picks the symbol a line's run is matched against: the first
// non-wild, non-scatter symbol, or the leading wild itself when the whole
// line is wild. A line whose first non-wild symbol is a scatter has no base
// and pays no line win, even when wilds precede the scatter; scatters pay
// only through their grid-wide conditions.
func baseSymbol(m *models.Machine, symbols []string) string {
	for _, id := range symbols {
		if m.IsWild(id) {
			continue
		}
		if m.IsScatterSymbol(id) {
			return ""
		}
		return id
	}
	if len(symbols) > 0 && m.IsWild(symbols[0]) {
		return symbols[0]
	}
	return ""
}

// evaluateScatters scores conditions that count symbols anywhere on the
// grid. Only the highest satisfied tier pays per scatter symbol.
func evaluateScatters(m *models.Machine, grid models.Grid, bet decimal.Decimal) (decimal.Decimal, []models.WinLine) {
	total := decimal.Zero
	var wins []models.WinLine

	seen := make(map[string]bool)
	for _, wc := range m.WinConditions {
		if !wc.Scatter || seen[wc.SymbolID] {
			continue
		}
		seen[wc.SymbolID] = true

		count := grid.Count(wc.SymbolID)
		cond, ok := bestCondition(m, wc.SymbolID, count, true)
		if !ok {
			continue
		}

		sym, _ := m.Symbol(wc.SymbolID)
		payout := cond.Payout.Mul(bet).Mul(sym.Multiplier)
		total = total.Add(payout)
		wins = append(wins, models.WinLine{
			SymbolID: wc.SymbolID,
			Count:    count,
			Payout:   payout,
			Scatter:  true,
		})
	}

	return total, wins
}

// bestCondition returns the best-paying condition for the symbol whose
// required count is satisfied by the given run length.
func bestCondition(m *models.Machine, symbolID string, run int, scatter bool) (models.WinCondition, bool) {
	var best models.WinCondition
	found := false
	for _, wc := range m.WinConditions {
		if wc.Scatter != scatter || wc.SymbolID != symbolID || wc.Count > run {
			continue
		}
		if !found || wc.Payout.GreaterThan(best.Payout) {
			best = wc
			found = true
		}
	}
	return best, found
}
