package raffle

import (
	"github.com/rifas-ec/rifas/internal/domain"
	"github.com/rifas-ec/rifas/pkg/numberpool"
)

// GenerateLuckyNumbers draws the activity's lucky set from [1, TotalTickets].
// Lucky numbers are independent of sold tickets, so nothing is excluded; a
// lucky number only pays out if its ticket gets sold.
func GenerateLuckyNumbers(gen *numberpool.Generator, activity *domain.Activity) ([]string, error) {
	numbers, err := gen.Generate(activity.LuckyCount, activity.TotalTickets, nil)
	if err != nil {
		return nil, err
	}
	activity.LuckyNumbers = numbers
	return numbers, nil
}
