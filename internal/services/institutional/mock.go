package institutional

import (
	"math/rand"

	"github.com/hnakamura/kabuto/internal/models"
)

const mockDateReported = "2024-12-31"

// mockHolders covers the tickers the demo portfolio can reference. Unknown
// tickers get generated rows instead.
var mockHolders = map[string][]models.InstitutionalHolder{
	"AAPL": {
		{Holder: "Vanguard Group Inc", Shares: 1279431000, DateReported: mockDateReported, Change: 12500000, ChangePercentage: 0.99, Value: 236700000000},
		{Holder: "BlackRock Inc", Shares: 1012890000, DateReported: mockDateReported, Change: -5200000, ChangePercentage: -0.51, Value: 187400000000},
		{Holder: "Berkshire Hathaway Inc", Shares: 915560382, DateReported: mockDateReported, Change: 0, ChangePercentage: 0, Value: 169400000000},
		{Holder: "State Street Corporation", Shares: 591230000, DateReported: mockDateReported, Change: 8900000, ChangePercentage: 1.53, Value: 109400000000},
		{Holder: "FMR LLC (Fidelity)", Shares: 350120000, DateReported: mockDateReported, Change: 15600000, ChangePercentage: 4.66, Value: 64800000000},
		{Holder: "Geode Capital Management", Shares: 289000000, DateReported: mockDateReported, Change: 4500000, ChangePercentage: 1.58, Value: 53500000000},
		{Holder: "Morgan Stanley", Shares: 245000000, DateReported: mockDateReported, Change: -12000000, ChangePercentage: -4.67, Value: 45300000000},
	},
	"MSFT": {
		{Holder: "Vanguard Group Inc", Shares: 890120000, DateReported: mockDateReported, Change: 8900000, ChangePercentage: 1.01, Value: 373850000000},
		{Holder: "BlackRock Inc", Shares: 720450000, DateReported: mockDateReported, Change: -2100000, ChangePercentage: -0.29, Value: 302590000000},
		{Holder: "State Street Corporation", Shares: 401230000, DateReported: mockDateReported, Change: 5600000, ChangePercentage: 1.41, Value: 168520000000},
		{Holder: "FMR LLC (Fidelity)", Shares: 289560000, DateReported: mockDateReported, Change: 12300000, ChangePercentage: 4.44, Value: 121615000000},
		{Holder: "Capital Research Global", Shares: 245780000, DateReported: mockDateReported, Change: -8900000, ChangePercentage: -3.49, Value: 103228000000},
		{Holder: "Geode Capital Management", Shares: 198000000, DateReported: mockDateReported, Change: 3200000, ChangePercentage: 1.64, Value: 83160000000},
	},
	"GOOGL": {
		{Holder: "Vanguard Group Inc", Shares: 356780000, DateReported: mockDateReported, Change: 5600000, ChangePercentage: 1.59, Value: 67500000000},
		{Holder: "BlackRock Inc", Shares: 298450000, DateReported: mockDateReported, Change: -3400000, ChangePercentage: -1.13, Value: 56400000000},
		{Holder: "State Street Corporation", Shares: 178900000, DateReported: mockDateReported, Change: 2300000, ChangePercentage: 1.30, Value: 33800000000},
		{Holder: "FMR LLC (Fidelity)", Shares: 156780000, DateReported: mockDateReported, Change: 8900000, ChangePercentage: 6.02, Value: 29600000000},
	},
	"TSLA": {
		{Holder: "Vanguard Group Inc", Shares: 198450000, DateReported: mockDateReported, Change: 12300000, ChangePercentage: 6.61, Value: 49100000000},
		{Holder: "BlackRock Inc", Shares: 175890000, DateReported: mockDateReported, Change: 8900000, ChangePercentage: 5.33, Value: 43500000000},
		{Holder: "State Street Corporation", Shares: 98760000, DateReported: mockDateReported, Change: 4500000, ChangePercentage: 4.78, Value: 24400000000},
		{Holder: "Geode Capital Management", Shares: 45670000, DateReported: mockDateReported, Change: 2100000, ChangePercentage: 4.82, Value: 11300000000},
	},
	"NVDA": {
		{Holder: "Vanguard Group Inc", Shares: 890120000, DateReported: mockDateReported, Change: 45000000, ChangePercentage: 5.33, Value: 123400000000},
		{Holder: "BlackRock Inc", Shares: 756780000, DateReported: mockDateReported, Change: 38000000, ChangePercentage: 5.29, Value: 104900000000},
		{Holder: "State Street Corporation", Shares: 412300000, DateReported: mockDateReported, Change: 21000000, ChangePercentage: 5.37, Value: 57100000000},
		{Holder: "FMR LLC (Fidelity)", Shares: 345670000, DateReported: mockDateReported, Change: 18900000, ChangePercentage: 5.78, Value: 47900000000},
		{Holder: "Geode Capital Management", Shares: 198760000, DateReported: mockDateReported, Change: 12300000, ChangePercentage: 6.60, Value: 27500000000},
	},
	"7203": {
		{Holder: "トヨタ自動車株式会社（自己株式）", Shares: 500000000, DateReported: mockDateReported, Change: 0, ChangePercentage: 0, Value: 1425000000000},
		{Holder: "日本マスタートラスト信託銀行", Shares: 180000000, DateReported: mockDateReported, Change: 5000000, ChangePercentage: 2.86, Value: 513000000000},
		{Holder: "日本カストディ銀行", Shares: 120000000, DateReported: mockDateReported, Change: 2000000, ChangePercentage: 1.69, Value: 342000000000},
		{Holder: "ステートストリート", Shares: 45000000, DateReported: mockDateReported, Change: 1500000, ChangePercentage: 3.45, Value: 128250000000},
		{Holder: "ブラックロック・ジャパン", Shares: 38000000, DateReported: mockDateReported, Change: -500000, ChangePercentage: -1.30, Value: 108300000000},
	},
	"6758": {
		{Holder: "日本マスタートラスト信託銀行", Shares: 150000000, DateReported: mockDateReported, Change: 3000000, ChangePercentage: 2.04, Value: 2175000000000},
		{Holder: "日本カストディ銀行", Shares: 95000000, DateReported: mockDateReported, Change: 1500000, ChangePercentage: 1.60, Value: 1377500000000},
		{Holder: "バンガード・グループ", Shares: 42000000, DateReported: mockDateReported, Change: 800000, ChangePercentage: 1.94, Value: 609000000000},
		{Holder: "ブラックロック・ジャパン", Shares: 35000000, DateReported: mockDateReported, Change: -200000, ChangePercentage: -0.57, Value: 507500000000},
	},
}

// randomHolders fabricates plausible rows for tickers outside the static
// table.
func randomHolders(rng *rand.Rand) []models.InstitutionalHolder {
	return []models.InstitutionalHolder{
		{
			Holder:           "Vanguard Group Inc",
			Shares:           rng.Int63n(500000000) + 100000000,
			DateReported:     mockDateReported,
			Change:           rng.Int63n(10000000) - 5000000,
			ChangePercentage: rng.Float64()*10 - 5,
			Value:            float64(rng.Int63n(100000000000)),
		},
		{
			Holder:           "BlackRock Inc",
			Shares:           rng.Int63n(400000000) + 80000000,
			DateReported:     mockDateReported,
			Change:           rng.Int63n(8000000) - 4000000,
			ChangePercentage: rng.Float64()*8 - 4,
			Value:            float64(rng.Int63n(80000000000)),
		},
		{
			Holder:           "State Street Corporation",
			Shares:           rng.Int63n(200000000) + 50000000,
			DateReported:     mockDateReported,
			Change:           rng.Int63n(5000000) - 2500000,
			ChangePercentage: rng.Float64()*6 - 3,
			Value:            float64(rng.Int63n(50000000000)),
		},
	}
}
