package dashboard

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"sort"

	"github.com/ezouu/reddit-price-checker/internal/domain"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

func StartServer(dataFile string, port string) error {
	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		listings := loadData(dataFile)

		// 1. Venue Share
		pie := charts.NewPie()
		pie.SetGlobalOptions(
			charts.WithTitleOpts(opts.Title{Title: "Venue Share"}),
			charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
		)

		venueCounts := make(map[string]int)
		for _, l := range listings {
			venueCounts[l.Venue]++
		}

		var pieItems []opts.PieData
		for k, v := range venueCounts {
			pieItems = append(pieItems, opts.PieData{Name: "r/" + k, Value: v})
		}
		pie.AddSeries("Listings", pieItems)

		// 2. Price History (oldest to newest)
		line := charts.NewLine()
		line.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Price History"}))

		sort.Slice(listings, func(i, j int) bool {
			return listings[i].CreatedUTC < listings[j].CreatedUTC
		})

		var lineX []string
		var lineY []opts.LineData
		for _, l := range listings {
			lineX = append(lineX, l.Date)
			lineY = append(lineY, opts.LineData{Value: l.Price, Name: fmt.Sprintf("$%.2f %s", l.Price, l.Title)})
		}
		line.SetXAxis(lineX).AddSeries("Asking Price", lineY)

		pie.Render(w)
		line.Render(w)
	})

	return http.ListenAndServe(":"+port, nil)
}

func loadData(path string) []domain.Listing {
	f, _ := os.Open(path)
	defer f.Close()
	var listings []domain.Listing
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var l domain.Listing
		if err := json.Unmarshal(scanner.Bytes(), &l); err == nil {
			listings = append(listings, l)
		}
	}
	return listings
}
