package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/NhuNhui/GPS/internal/calculator"
	"github.com/NhuNhui/GPS/internal/export"
	"github.com/NhuNhui/GPS/internal/models"
)

// main runs a single target calculation from command-line flags and prints
// the result, optionally exporting the scenario as GeoJSON.
func main() {
	lat := flag.Float64("lat", 0, "observer latitude in decimal degrees")
	lon := flag.Float64("lon", 0, "observer longitude in decimal degrees")
	azimuth := flag.Float64("azimuth", 0, "bearing to the target in degrees from true north")
	distance := flag.Float64("distance", 0, "distance to the target in kilometers")
	gpsErr := flag.Float64("gps-error", calculator.DefaultGPSErrorM, "GPS receiver error in meters")
	azimuthErr := flag.Float64("azimuth-error", calculator.DefaultAzimuthErrorDeg, "azimuth measurement error in degrees")
	rangeErr := flag.Float64("range-error", calculator.DefaultRangeErrorM, "rangefinder error in meters")
	geojson := flag.String("geojson", "", "write the scenario as GeoJSON to this path")
	flag.Parse()

	calc := calculator.New(calculator.ErrorBudget{
		GPSErrorM:       *gpsErr,
		AzimuthErrorDeg: *azimuthErr,
		RangeErrorM:     *rangeErr,
	})

	result, err := calc.CalculateTarget(models.CalculationRequest{
		Observer:   models.GeoPoint{Latitude: *lat, Longitude: *lon},
		BearingDeg: *azimuth,
		DistanceKm: *distance,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "gpstarget: %v\n", err)
		os.Exit(1)
	}

	printResult(result)

	if *geojson != "" {
		if err := export.WriteScenario(*geojson, result); err != nil {
			fmt.Fprintf(os.Stderr, "gpstarget: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nScenario written to %s\n", *geojson)
	}
}

func printResult(result *models.CalculationResult) {
	fmt.Println("Observer:")
	fmt.Printf("  %.6f, %.6f\n", result.Observer.Latitude, result.Observer.Longitude)
	fmt.Printf("  %s %s\n",
		calculator.FormatDMS(result.ObserverDMS.Latitude, calculator.AxisLatitude),
		calculator.FormatDMS(result.ObserverDMS.Longitude, calculator.AxisLongitude),
	)

	fmt.Println("Measurement:")
	fmt.Printf("  bearing %s, distance %s\n", result.BearingLabel, result.DistanceLabel)

	fmt.Println("Target:")
	fmt.Printf("  %.6f, %.6f\n", result.Target.Latitude, result.Target.Longitude)
	fmt.Printf("  %s %s\n",
		calculator.FormatDMS(result.TargetDMS.Latitude, calculator.AxisLatitude),
		calculator.FormatDMS(result.TargetDMS.Longitude, calculator.AxisLongitude),
	)

	fmt.Println("Verification:")
	fmt.Printf("  distance %.6f km (error %.2e km)\n",
		result.Verification.DistanceKm, result.Verification.DistanceErrorKm)
	fmt.Printf("  bearing %.4f° (error %.2e°)\n",
		result.Verification.BearingDeg, result.Verification.BearingErrorDeg)

	fmt.Printf("Estimated position error: %.1f m\n", result.EstimatedErrorM)

	if result.Warning != "" {
		fmt.Printf("Warning: %s\n", result.Warning)
	}
}
