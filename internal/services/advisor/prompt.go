package advisor

import (
	"fmt"
	"strings"

	"github.com/hnakamura/kabuto/internal/common"
	"github.com/hnakamura/kabuto/internal/models"
)

const promptPersona = `あなたは経験豊富な日本の証券アナリストです。以下のポートフォリオデータと関連ニュースを分析し、日本語で詳細な投資分析レポートを作成してください。

レポートには以下を含めてください:
1. 市場概況と現在のセンチメント(強気・弱気・中立のいずれかを明示)
2. ポートフォリオの脆弱性とリスク要因
3. セクター別の見通しと推奨配分
4. 具体的な投資アクションの提案

レポートはMarkdown形式で記述してください。`

// buildPrompt assembles the analysis prompt: persona, portfolio figures,
// per-holding and per-sector tables, then any headlines. All monetary
// amounts are already normalized to JPY.
func buildPrompt(summary *models.PortfolioSummary, news []models.NewsItem, live headlineSet) string {
	var b strings.Builder

	b.WriteString(promptPersona)
	b.WriteString("\n\n## ポートフォリオサマリー\n\n")
	fmt.Fprintf(&b, "| 項目 | 値 |\n|---|---|\n")
	fmt.Fprintf(&b, "| 評価額合計 | %s |\n", common.FormatJPY(summary.TotalValue))
	fmt.Fprintf(&b, "| 取得額合計 | %s |\n", common.FormatJPY(summary.TotalCost))
	fmt.Fprintf(&b, "| 評価損益 | %s (%s) |\n", common.FormatSignedJPY(summary.TotalGain), common.FormatSignedPct(summary.TotalGainPercent))
	fmt.Fprintf(&b, "| 保有銘柄数 | %d |\n", summary.AssetCount)

	if summary.TopPerformer != nil {
		fmt.Fprintf(&b, "\n最高パフォーマンス銘柄: %s (%s)\n", summary.TopPerformer.Asset.Name, common.FormatSignedPct(summary.TopPerformer.GainPercent))
	}
	if summary.WorstPerformer != nil {
		fmt.Fprintf(&b, "最低パフォーマンス銘柄: %s (%s)\n", summary.WorstPerformer.Asset.Name, common.FormatSignedPct(summary.WorstPerformer.GainPercent))
	}

	b.WriteString("\n## 保有銘柄\n\n")
	b.WriteString("| 銘柄 | ティッカー | セクター | 評価額 | 損益率 | 構成比 |\n|---|---|---|---|---|---|\n")
	for _, h := range summary.Holdings {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			h.Asset.Name, h.Asset.Ticker, h.Asset.Sector,
			common.FormatJPY(h.Value), common.FormatSignedPct(h.GainPercent), common.FormatPct(h.WeightPct))
	}

	b.WriteString("\n## セクター別内訳\n\n")
	b.WriteString("| セクター | 評価額 | 銘柄数 | 構成比 |\n|---|---|---|---|\n")
	for _, sec := range summary.SectorBreakdown {
		fmt.Fprintf(&b, "| %s | %s | %d | %s |\n",
			sec.Sector, common.FormatJPY(sec.Value), sec.Count, common.FormatPct(sec.Percentage))
	}

	writeNewsSections(&b, news, live)

	return b.String()
}

func writeNewsSections(b *strings.Builder, news []models.NewsItem, live headlineSet) {
	if len(news) > 0 {
		b.WriteString("\n## 関連ニュース\n\n")
		for _, item := range news {
			fmt.Fprintf(b, "- %s (%s)\n", item.Title, item.Source.Name)
		}
	}

	if len(live.stockOrder) > 0 {
		b.WriteString("\n## 銘柄別ヘッドライン\n\n")
		for _, name := range live.stockOrder {
			fmt.Fprintf(b, "### %s\n", name)
			for _, h := range live.perStock[name] {
				fmt.Fprintf(b, "- %s (%s)\n", h.Title, h.Source)
			}
		}
	}

	if len(live.market) > 0 {
		b.WriteString("\n## 市場ニュース\n\n")
		for _, h := range live.market {
			fmt.Fprintf(b, "- %s (%s)\n", h.Title, h.Source)
		}
	}
}
