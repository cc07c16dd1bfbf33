package mapping

import (
	"github.com/coinkrazygaming/social-coin-sub000/pkg/api"
	"github.com/coinkrazygaming/social-coin-sub000/pkg/models"
)

// ToApiMachine converts a domain Machine model to its API listing view.
func ToApiMachine(m *models.Machine) *api.Machine {
	return &api.Machine{
		Id:         m.ID,
		Name:       m.Name,
		Active:     m.Active,
		Reels:      len(m.Reels),
		Rows:       m.Rows,
		Paylines:   len(m.Paylines),
		MinBet:     m.MinBet,
		MaxBet:     m.MaxBet,
		TargetRTP:  m.TargetRTP,
		Volatility: string(m.Volatility),
	}
}

// ToDomainSpinRequest converts an API NewSpin body to a domain SpinRequest.
func ToDomainSpinRequest(newSpin *api.NewSpin) models.SpinRequest {
	return models.SpinRequest{
		UserID:    newSpin.UserId,
		MachineID: newSpin.MachineId,
		Currency:  models.Currency(newSpin.Currency),
		Bet:       newSpin.BetAmount,
	}
}

// ToApiSpinResult converts a domain SpinResult to its API model.
func ToApiSpinResult(res *models.SpinResult) *api.SpinResult {
	return &api.SpinResult{
		SpinId:         res.RecordID,
		Grid:           res.Grid,
		WinLines:       toApiWinLines(res.WinLines),
		TotalPayout:    res.TotalPayout,
		BonusTriggered: res.BonusTriggered,
		Balance:        res.Balance,
	}
}

// ToApiWallet converts a domain Wallet to its API model.
func ToApiWallet(w *models.Wallet) *api.Wallet {
	return &api.Wallet{
		UserId:   w.UserID,
		Currency: string(w.Currency),
		Balance:  w.Balance,
	}
}

// ToApiSpinRecord converts a domain SpinRecord to its API model.
func ToApiSpinRecord(rec *models.SpinRecord) *api.SpinRecord {
	return &api.SpinRecord{
		Id:             rec.ID,
		UserId:         rec.UserID,
		MachineId:      rec.MachineID,
		Currency:       string(rec.Currency),
		Bet:            rec.Bet,
		Payout:         rec.Payout,
		Grid:           rec.Grid,
		WinLines:       toApiWinLines(rec.WinLines),
		BonusTriggered: rec.BonusTriggered,
		CreatedAt:      rec.CreatedAt,
	}
}

// ToApiMachineStats converts a domain stats snapshot to its API model.
func ToApiMachineStats(s models.MachineStats) *api.MachineStats {
	return &api.MachineStats{
		MachineId:     s.MachineID,
		TotalSpins:    s.TotalSpins,
		TotalWagered:  s.TotalWagered,
		TotalPaid:     s.TotalPaid,
		Rtp:           s.RTP,
		BiggestPayout: s.BiggestPayout,
	}
}

func toApiWinLines(lines []models.WinLine) []api.WinLine {
	out := make([]api.WinLine, len(lines))
	for i, wl := range lines {
		out[i] = api.WinLine{
			PaylineId: wl.PaylineID,
			SymbolId:  wl.SymbolID,
			Count:     wl.Count,
			Payout:    wl.Payout,
			Scatter:   wl.Scatter,
		}
	}
	return out
}
