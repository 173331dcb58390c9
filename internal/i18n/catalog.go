package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
)

// spanish maps English source strings to their Spanish translation.
//
//nolint:gochecknoglobals // Static translation table.
var spanish = map[string]string{
	// Table headers.
	"#\tID\tNAME\tCATEGORY\tPOWER (W)\tHOURS/DAY\tKWH/YEAR":            "#\tID\tNOMBRE\tCATEGORÍA\tPOTENCIA (W)\tHORAS/DÍA\tKWH/AÑO",
	"DEVICE\tCATEGORY\tKWH/YEAR\tCO2 (KG)\tCOST":                       "DISPOSITIVO\tCATEGORÍA\tKWH/AÑO\tCO2 (KG)\tCOSTO",
	"CATEGORY\tDEVICES\tKWH/YEAR\tCO2 (KG)":                            "CATEGORÍA\tDISPOSITIVOS\tKWH/AÑO\tCO2 (KG)",
	"REGION\tKWH/YEAR\tCO2 (KG)\tCOST\tBENCHMARK CO2\tDELTA CO2":       "REGIÓN\tKWH/AÑO\tCO2 (KG)\tCOSTO\tCO2 DE REFERENCIA\tDIFERENCIA CO2",
	"DATE\tREGION\tKWH\tCO2 (KG)\tNET CO2 (KG)\tDEVICES":               "FECHA\tREGIÓN\tKWH\tCO2 (KG)\tCO2 NETO (KG)\tDISPOSITIVOS",
	"REGION\tKG CO2/KWH\tPRICE/KWH\tBENCHMARK KWH\tBENCHMARK CO2 (KG)": "REGIÓN\tKG CO2/KWH\tPRECIO/KWH\tKWH DE REFERENCIA\tCO2 DE REFERENCIA (KG)",
	"LIVE KG CO2/KWH": "KG CO2/KWH EN VIVO",

	// Results summary.
	"Footprint for %s":                    "Huella de %s",
	"live":                                "en vivo",
	"Annual energy":                       "Energía anual",
	"Annual CO2":                          "CO2 anual",
	"Annual cost":                         "Costo anual",
	"Emission factor":                     "Factor de emisión",
	"Net energy":                          "Energía neta",
	"Net CO2":                             "CO2 neto",
	"Renewable savings":                   "Ahorro renovable",
	"Embodied (one-time)":                 "Incorporado (única vez)",
	"vs. average household":               "vs. hogar promedio",
	"Excluded (invalid power or usage): ": "Excluidos (potencia o uso no válidos): ",
	"Saved to history.":                   "Guardado en el historial.",

	// Device list.
	"No devices.":                "No hay dispositivos.",
	"Added %s (%s), %s kWh/year": "Agregado %s (%s), %s kWh/año",
	"Updated %s":                 "Actualizado %s",
	"Removed %s":                 "Eliminado %s",
	"Reset cancelled.":           "Restablecimiento cancelado.",
	"Device list reset to %d catalog devices": "Lista restablecida a %d dispositivos del catálogo",
	"Imported %d devices":                     "Importados %d dispositivos",

	// Comparison.
	"%s average household: %s kWh, %s kg CO2":                      "Hogar promedio de %s: %s kWh, %s kg CO2",
	"You: %s kWh, %s kg CO2":                                       "Usted: %s kWh, %s kg CO2",
	"Difference: %s  %s":                                           "Diferencia: %s  %s",
	"You are above the regional average. Try 'footprint suggest'.": "Está por encima del promedio regional. Pruebe 'footprint suggest'.",
	"You are at or below the regional average.":                    "Está en el promedio regional o por debajo.",

	// Suggestions.
	"Your biggest consumer is %s (%s kWh/year).":            "Su mayor consumidor es %s (%s kWh/año).",
	"Using it %.0f%% less would save %s, %s and %s a year.": "Usarlo un %.0f%% menos ahorraría %s, %s y %s al año.",
	"No devices with usage to analyse.":                     "No hay dispositivos con uso para analizar.",

	// History.
	"No history yet. Record one with 'footprint history save'.": "Aún no hay historial. Registre uno con 'footprint history save'.",
	"Saved %s kWh, %s kg CO2 for %s (%d of %d snapshots)":       "Guardado %s kWh, %s kg CO2 para %s (%d de %d registros)",
}

//nolint:gochecknoglobals // Built once at init from the translation tables.
var catalogue = mustCatalog()

func mustCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, msg := range spanish {
		if err := b.SetString(language.Spanish, key, msg); err != nil {
			panic(fmt.Sprintf("i18n: registering %q: %v", key, err))
		}
	}
	return b
}
