package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/hnakamura/kabuto/internal/models"
	"github.com/hnakamura/kabuto/internal/portfolio"
	"github.com/hnakamura/kabuto/internal/services/institutional"
)

// handleInstitutional handles GET /api/institutional?ticker=X.
func (s *Server) handleInstitutional(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	ticker := r.URL.Query().Get("ticker")
	if ticker == "" {
		WriteError(w, http.StatusBadRequest, "ティッカーシンボルが必要です")
		return
	}

	holders, isMock, err := s.app.InstitutionalService.Holders(r.Context(), ticker)
	if err != nil {
		if errors.Is(err, institutional.ErrTickerRequired) {
			WriteError(w, http.StatusBadRequest, "ティッカーシンボルが必要です")
			return
		}
		s.logger.Error().Err(err).Str("ticker", ticker).Msg("Institutional lookup failed")
		WriteError(w, http.StatusInternalServerError, "機関投資家データの取得に失敗しました")
		return
	}

	resp := Response{Success: true, Data: holders, IsMock: isMock}
	if isMock {
		resp.Message = "モックデータを使用中。FMP_API_KEY環境変数を設定すると実データが利用できます。"
	}
	WriteJSON(w, http.StatusOK, resp)
}

// handleNews handles GET /api/news. This deployment always serves the
// fixed sample headlines.
func (s *Server) handleNews(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	WriteJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    mockNews(time.Now()),
		IsMock:  true,
		Message: "サンプルニュースを表示中",
	})
}

// handlePortfolioSummary handles GET /api/portfolio/summary. Optional
// query params run a what-if: rate overrides the USD rate, shift
// multiplies every current price.
func (s *Server) handlePortfolioSummary(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	table := s.app.Rates
	if raw := r.URL.Query().Get("rate"); raw != "" {
		rate, err := strconv.ParseFloat(raw, 64)
		if err != nil || rate <= 0 {
			WriteError(w, http.StatusBadRequest, "rate must be a positive number")
			return
		}
		table = table.WithRate("USD", rate)
	}

	shift := 1.0
	if raw := r.URL.Query().Get("shift"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v <= 0 {
			WriteError(w, http.StatusBadRequest, "shift must be a positive number")
			return
		}
		shift = v
	}

	assets, err := s.app.Store.List(r.Context())
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list assets")
		WriteError(w, http.StatusInternalServerError, "Failed to list assets")
		return
	}

	if shift != 1.0 {
		for i := range assets {
			assets[i].CurrentPrice *= shift
		}
	}

	summary, err := portfolio.Summarize(assets, table)
	if err != nil {
		// Unknown currency on a stored asset is corrupted state, not a
		// client error.
		s.logger.Error().Err(err).Msg("Portfolio aggregation failed")
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	WriteData(w, http.StatusOK, summary)
}

// handlePortfolioChart handles GET /api/portfolio/chart, rendering the
// sector allocation as a PNG pie chart.
func (s *Server) handlePortfolioChart(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	assets, err := s.app.Store.List(r.Context())
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list assets")
		WriteError(w, http.StatusInternalServerError, "Failed to list assets")
		return
	}

	summary, err := portfolio.Summarize(assets, s.app.Rates)
	if err != nil {
		s.logger.Error().Err(err).Msg("Portfolio aggregation failed")
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	png, err := portfolio.RenderSectorChart(summary)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Portfolio is empty, nothing to chart")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// mockNews returns the fixed sample headlines with publication times
// anchored to now.
func mockNews(now time.Time) []models.NewsItem {
	at := func(hoursAgo int) string {
		return now.Add(-time.Duration(hoursAgo) * time.Hour).UTC().Format(time.RFC3339)
	}
	return []models.NewsItem{
		{
			Title:       "日銀、金融政策決定会合で現状維持を決定 市場は円安進行に警戒",
			Description: "日本銀行は金融政策決定会合で大規模金融緩和の維持を決定。市場では今後の為替動向に注目が集まっている。",
			URL:         "https://example.com/news/1",
			Source:      models.NewsSource{Name: "日本経済新聞"},
			PublishedAt: at(2),
			Author:      "経済部",
		},
		{
			Title:       "半導体関連株が軒並み上昇 AI需要拡大への期待高まる",
			Description: "東京株式市場で半導体関連銘柄が大幅高。生成AI向け需要の拡大期待から、買いが広がっている。",
			URL:         "https://example.com/news/2",
			Source:      models.NewsSource{Name: "東洋経済オンライン"},
			PublishedAt: at(4),
			Author:      "編集部",
		},
		{
			Title:       "米国株式市場 S&P500が最高値更新 テック株がけん引",
			Description: "ニューヨーク株式市場でS&P500指数が史上最高値を更新。大手テクノロジー企業の好決算が相場を押し上げた。",
			URL:         "https://example.com/news/3",
			Source:      models.NewsSource{Name: "Bloomberg Japan"},
			PublishedAt: at(6),
			Author:      "金融チーム",
		},
		{
			Title:       "暗号資産市場が回復基調 ビットコインが節目突破",
			Description: "暗号資産市場で買いが優勢。ビットコインは重要な抵抗線を突破し、投資家心理が改善している。",
			URL:         "https://example.com/news/4",
			Source:      models.NewsSource{Name: "コインテレグラフ"},
			PublishedAt: at(8),
			Author:      "暗号資産担当",
		},
		{
			Title:       "原油価格が上昇 中東情勢の緊迫化で供給懸念",
			Description: "国際原油価格が上昇。中東地域での地政学リスク高まりを受け、供給不安から買いが入っている。",
			URL:         "https://example.com/news/5",
			Source:      models.NewsSource{Name: "ロイター"},
			PublishedAt: at(10),
			Author:      "コモディティ担当",
		},
		{
			Title:       "製薬大手の新薬承認で株価急騰 がん治療に新たな選択肢",
			Description: "大手製薬会社が開発した新たながん治療薬がFDA承認を取得。関連銘柄に買いが殺到している。",
			URL:         "https://example.com/news/6",
			Source:      models.NewsSource{Name: "医薬経済"},
			PublishedAt: at(12),
			Author:      "ヘルスケア担当",
		},
		{
			Title:       "不動産市場に底打ち感 都心オフィス空室率が改善",
			Description: "東京都心のオフィス空室率が3ヶ月連続で低下。企業のオフィス回帰の動きが加速している。",
			URL:         "https://example.com/news/7",
			Source:      models.NewsSource{Name: "不動産経済新聞"},
			PublishedAt: at(14),
			Author:      "不動産担当",
		},
		{
			Title:       "個人消費、物価高でも底堅く推移 インバウンド需要が下支え",
			Description: "総務省が発表した家計調査によると、個人消費は物価上昇にもかかわらず堅調に推移。訪日観光客の増加が寄与している。",
			URL:         "https://example.com/news/8",
			Source:      models.NewsSource{Name: "時事通信"},
			PublishedAt: at(16),
			Author:      "経済統計担当",
		},
	}
}
