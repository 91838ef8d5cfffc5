package config

import (
	"github.com/sitesspectral/spectral-go/internal/domain/instrument"
	"github.com/sitesspectral/spectral-go/internal/domain/platform"
)

func fp(v float64) *float64 {
	return &v
}

// DefaultCatalog returns the built-in type/hardware catalog used when no
// catalog file is configured. Schema fields are all optional so that
// auto-provisioned payloads (whose specification sets vary by hardware
// generation) always validate; operators tighten schemas via a catalog
// file when their network needs it.
func DefaultCatalog() *Catalog {
	return &Catalog{
		InstrumentTypes:   defaultInstrumentTypes(),
		UAVVendors:        defaultUAVVendors(),
		SatelliteAgencies: defaultSatelliteAgencies(),
	}
}

func defaultInstrumentTypes() map[string]instrument.TypeDefinition {
	return map[string]instrument.TypeDefinition{
		"phenocam": {
			DisplayName:         "Phenocam",
			Description:         "Time-lapse RGB camera for vegetation phenology monitoring",
			Icon:                "camera",
			Color:               "#4CAF50",
			ShortCode:           "PHE",
			Category:            "camera",
			CompatiblePlatforms: []string{"fixed"},
			Schema: map[string]instrument.FieldSpec{
				"image_format": {
					Type:    "select",
					Label:   "Image Format",
					Options: []string{"JPEG", "TIFF"},
					Default: "JPEG",
				},
				"interval_minutes": {
					Type:  "number",
					Label: "Capture Interval (min)",
					Min:   fp(1),
					Max:   fp(1440),
				},
				"field_of_view_deg": {
					Type:  "number",
					Label: "Field of View (deg)",
					Min:   fp(1),
					Max:   fp(180),
				},
			},
		},
		"multispectral_sensor": {
			DisplayName: "Multispectral Sensor",
			Description: "Sensor capturing discrete spectral bands for vegetation indices",
			Icon:        "layers",
			Color:       "#9C27B0",
			ShortCode:   "MS",
			Category:    "sensor",
			Schema: map[string]instrument.FieldSpec{
				"number_of_bands": {
					Type:  "number",
					Label: "Number of Bands",
					Min:   fp(1),
					Max:   fp(300),
				},
				"spectral_bands": {
					Type:  "string",
					Label: "Spectral Bands",
					Help:  "Comma-separated band list with center wavelengths",
				},
				"spatial_resolution": {
					Type:  "string",
					Label: "Spatial Resolution",
				},
			},
		},
		"rgb_camera": {
			DisplayName: "RGB Camera",
			Description: "True-color camera",
			Icon:        "photo_camera",
			Color:       "#2196F3",
			ShortCode:   "RGB",
			Category:    "camera",
			Schema: map[string]instrument.FieldSpec{
				"resolution_mp": {
					Type:  "number",
					Label: "Resolution (MP)",
					Min:   fp(0),
					Max:   fp(200),
				},
			},
		},
		"thermal_camera": {
			DisplayName: "Thermal Camera",
			Description: "Long-wave infrared imager for surface temperature",
			Icon:        "thermostat",
			Color:       "#FF5722",
			ShortCode:   "THM",
			Category:    "camera",
			Schema: map[string]instrument.FieldSpec{
				"resolution": {
					Type:  "string",
					Label: "Resolution",
					Help:  "Detector resolution, e.g. 640x512",
				},
				"spectral_range": {
					Type:  "string",
					Label: "Spectral Range",
				},
			},
		},
		"hyperspectral_sensor": {
			DisplayName: "Hyperspectral Sensor",
			Description: "Contiguous narrow-band imaging spectrometer",
			Icon:        "gradient",
			Color:       "#673AB7",
			ShortCode:   "HYP",
			Category:    "sensor",
			Schema: map[string]instrument.FieldSpec{
				"number_of_bands": {
					Type:  "number",
					Label: "Number of Bands",
					Min:   fp(1),
					Max:   fp(1000),
				},
				"spectral_range": {
					Type:  "string",
					Label: "Spectral Range",
				},
			},
		},
		"spectrometer": {
			DisplayName:         "Spectrometer",
			Description:         "Point spectrometer for surface reflectance",
			Icon:                "show_chart",
			Color:               "#3F51B5",
			ShortCode:           "SPC",
			Category:            "sensor",
			CompatiblePlatforms: []string{"fixed"},
			Schema: map[string]instrument.FieldSpec{
				"wavelength_range": {
					Type:  "string",
					Label: "Wavelength Range",
				},
				"fwhm_nm": {
					Type:  "number",
					Label: "FWHM (nm)",
					Min:   fp(0),
					Max:   fp(100),
				},
			},
		},
		"par_sensor": {
			DisplayName:         "PAR Sensor",
			Description:         "Photosynthetically active radiation sensor",
			Icon:                "wb_sunny",
			Color:               "#FFC107",
			ShortCode:           "PAR",
			Category:            "radiation",
			CompatiblePlatforms: []string{"fixed"},
			Schema: map[string]instrument.FieldSpec{
				"wavelength_range": {
					Type:    "string",
					Label:   "Wavelength Range",
					Default: "400-700nm",
				},
			},
		},
		"ndvi_sensor": {
			DisplayName:         "NDVI Sensor",
			Description:         "Two-band radiometer for the normalized difference vegetation index",
			Icon:                "grass",
			Color:               "#8BC34A",
			ShortCode:           "NDVI",
			Category:            "radiation",
			CompatiblePlatforms: []string{"fixed"},
			Schema: map[string]instrument.FieldSpec{
				"bands": {
					Type:  "string",
					Label: "Bands",
					Help:  "Band pair, e.g. Red 650nm / NIR 810nm",
				},
			},
		},
		"soil_moisture_sensor": {
			DisplayName:         "Soil Moisture Sensor",
			Description:         "Buried probe array measuring volumetric water content",
			Icon:                "water_drop",
			Color:               "#795548",
			ShortCode:           "SMS",
			Category:            "soil",
			CompatiblePlatforms: []string{"fixed"},
			Schema: map[string]instrument.FieldSpec{
				"depth_cm": {
					Type:  "number",
					Label: "Installation Depth (cm)",
					Min:   fp(0),
					Max:   fp(500),
				},
				"sensor_count": {
					Type:  "number",
					Label: "Sensor Count",
					Min:   fp(1),
					Max:   fp(100),
				},
			},
		},
		"water_quality_sonde": {
			DisplayName:         "Water Quality Sonde",
			Description:         "Multi-parameter probe for in-situ water quality",
			Icon:                "waves",
			Color:               "#00BCD4",
			ShortCode:           "WQS",
			Category:            "aquatic",
			CompatiblePlatforms: []string{"fixed", "usv", "uuv"},
			Schema: map[string]instrument.FieldSpec{
				"parameters": {
					Type:  "string",
					Label: "Measured Parameters",
					Help:  "e.g. temperature, conductivity, pH, dissolved oxygen",
				},
				"max_depth_m": {
					Type:  "number",
					Label: "Max Depth (m)",
					Min:   fp(0),
					Max:   fp(11000),
				},
			},
		},
		"ctd_profiler": {
			DisplayName:         "CTD Profiler",
			Description:         "Conductivity, temperature, and depth profiler",
			Icon:                "straighten",
			Color:               "#009688",
			ShortCode:           "CTD",
			Category:            "aquatic",
			CompatiblePlatforms: []string{"usv", "uuv"},
			Schema: map[string]instrument.FieldSpec{
				"max_depth_m": {
					Type:  "number",
					Label: "Max Depth (m)",
					Min:   fp(0),
					Max:   fp(11000),
				},
			},
		},
	}
}

func defaultUAVVendors() []platform.UAVVendorDef {
	return []platform.UAVVendorDef{
		{
			Name: "DJI",
			Models: []platform.UAVModelDef{
				{
					Name:        "M3M",
					DisplayName: "Mavic 3 Multispectral",
					Aliases:     []string{"Mavic 3M", "Mavic-3-Multispectral", "Mavic 3 Multispectral"},
					Instruments: []platform.CatalogInstrument{
						{
							InstrumentType: "Multispectral Sensor",
							Specifications: map[string]interface{}{
								"number_of_bands":    4,
								"spectral_bands":     "Green (560nm), Red (650nm), Red Edge (730nm), NIR (860nm)",
								"spatial_resolution": "5cm @ 60m AGL",
							},
						},
						{
							InstrumentType: "RGB Camera",
							Specifications: map[string]interface{}{
								"resolution_mp": 20,
							},
						},
					},
				},
				{
					Name:        "M3T",
					DisplayName: "Mavic 3 Thermal",
					Aliases:     []string{"Mavic 3T", "Mavic-3-Thermal"},
					Instruments: []platform.CatalogInstrument{
						{
							InstrumentType: "Thermal Camera",
							Specifications: map[string]interface{}{
								"resolution":     "640x512",
								"spectral_range": "8-14um",
							},
						},
						{
							InstrumentType: "RGB Camera",
							Specifications: map[string]interface{}{
								"resolution_mp": 48,
							},
						},
					},
				},
				{
					Name:        "P4M",
					DisplayName: "Phantom 4 Multispectral",
					Aliases:     []string{"Phantom 4M", "Phantom-4-Multispectral"},
					Instruments: []platform.CatalogInstrument{
						{
							InstrumentType: "Multispectral Sensor",
							Specifications: map[string]interface{}{
								"number_of_bands": 5,
								"spectral_bands":  "Blue (450nm), Green (560nm), Red (650nm), Red Edge (730nm), NIR (840nm)",
							},
						},
						{
							InstrumentType: "RGB Camera",
							Specifications: map[string]interface{}{
								"resolution_mp": 2,
							},
						},
					},
				},
			},
		},
		{
			Name:    "senseFly",
			Aliases: []string{"sense fly", "sense-fly"},
			Models: []platform.UAVModelDef{
				{
					Name:        "EBEEX",
					DisplayName: "eBee X",
					Aliases:     []string{"eBee X", "eBee-X"},
					Instruments: []platform.CatalogInstrument{
						{
							InstrumentType: "RGB Camera",
							Specifications: map[string]interface{}{
								"resolution_mp": 24,
							},
						},
					},
				},
			},
		},
	}
}

func defaultSatelliteAgencies() []platform.AgencyDef {
	msiPayload := func() []platform.CatalogInstrument {
		return []platform.CatalogInstrument{
			{
				InstrumentType: "Multispectral Sensor",
				DisplayName:    "MultiSpectral Instrument",
				Specifications: map[string]interface{}{
					"number_of_bands":    13,
					"spatial_resolution": "10-60m",
					"operating_mode":     "push-broom",
				},
			},
		}
	}
	oliPayload := func() []platform.CatalogInstrument {
		return []platform.CatalogInstrument{
			{
				InstrumentType: "Multispectral Sensor",
				DisplayName:    "Operational Land Imager",
				Specifications: map[string]interface{}{
					"number_of_bands":    9,
					"spatial_resolution": "15-30m",
					"operating_mode":     "push-broom",
				},
			},
		}
	}

	return []platform.AgencyDef{
		{
			Name:        "ESA",
			DisplayName: "European Space Agency",
			Satellites: []platform.SatelliteDef{
				{
					Name:        "S2A",
					DisplayName: "Sentinel-2A",
					Aliases:     []string{"Sentinel-2A", "Sentinel 2A"},
					Sensors: []platform.SensorDef{
						{Name: "MSI", DisplayName: "MultiSpectral Instrument", Instruments: msiPayload()},
					},
				},
				{
					Name:        "S2B",
					DisplayName: "Sentinel-2B",
					Aliases:     []string{"Sentinel-2B", "Sentinel 2B"},
					Sensors: []platform.SensorDef{
						{Name: "MSI", DisplayName: "MultiSpectral Instrument", Instruments: msiPayload()},
					},
				},
				{
					Name:        "S3A",
					DisplayName: "Sentinel-3A",
					Aliases:     []string{"Sentinel-3A", "Sentinel 3A"},
					Sensors: []platform.SensorDef{
						{
							Name:        "OLCI",
							DisplayName: "Ocean and Land Colour Instrument",
							Instruments: []platform.CatalogInstrument{
								{
									InstrumentType: "Multispectral Sensor",
									DisplayName:    "Ocean and Land Colour Instrument",
									Specifications: map[string]interface{}{
										"number_of_bands":    21,
										"spatial_resolution": "300m",
										"operating_mode":     "push-broom",
									},
								},
							},
						},
					},
				},
			},
		},
		{
			Name:        "NASA",
			DisplayName: "National Aeronautics and Space Administration",
			Satellites: []platform.SatelliteDef{
				{
					Name:        "L8",
					DisplayName: "Landsat 8",
					Aliases:     []string{"Landsat-8", "Landsat 8"},
					Sensors: []platform.SensorDef{
						{Name: "OLI", DisplayName: "Operational Land Imager", Instruments: oliPayload()},
						{
							Name:        "TIRS",
							DisplayName: "Thermal Infrared Sensor",
							Instruments: []platform.CatalogInstrument{
								{
									InstrumentType: "Thermal Camera",
									DisplayName:    "Thermal Infrared Sensor",
									Specifications: map[string]interface{}{
										"resolution":     "100m",
										"spectral_range": "10.6-12.5um",
									},
								},
							},
						},
					},
				},
				{
					Name:        "L9",
					DisplayName: "Landsat 9",
					Aliases:     []string{"Landsat-9", "Landsat 9"},
					Sensors: []platform.SensorDef{
						{Name: "OLI2", DisplayName: "Operational Land Imager 2", Aliases: []string{"OLI-2"}, Instruments: oliPayload()},
					},
				},
			},
		},
	}
}
