package rawkit

// FileType identifies the format of a raw mass-spectrometry data file.
type FileType string

// Recognized raw data file formats
const (
	// FileTypeThermoRaw is the Thermo Fisher binary .raw format
	FileTypeThermoRaw FileType = "thermo_raw"
	// FileTypeNetCDF is the ANDI-MS netCDF format
	FileTypeNetCDF FileType = "netcdf"
	// FileTypeMzML is the PSI mzML open XML format
	FileTypeMzML FileType = "mzml"
	// FileTypeMzData is the legacy PSI mzData XML format
	FileTypeMzData FileType = "mzdata"
	// FileTypeMzXML is the SASHIMI mzXML format
	FileTypeMzXML FileType = "mzxml"
	// FileTypeWatersRaw is the Waters .raw directory format
	FileTypeWatersRaw FileType = "waters_raw"
	// FileTypeAgilentCSV is the Agilent chromatogram CSV export
	FileTypeAgilentCSV FileType = "agilent_csv"
	// FileTypeUnsupported is returned when no known format matches
	FileTypeUnsupported FileType = "unsupported"
)

// String returns the type tag.
func (t FileType) String() string {
	return string(t)
}

// IsXMLBased returns true for the open XML interchange formats.
func IsXMLBased(t FileType) bool {
	return t == FileTypeMzML || t == FileTypeMzData || t == FileTypeMzXML
}

// IsVendorFormat returns true for proprietary instrument-vendor formats.
func IsVendorFormat(t FileType) bool {
	return t == FileTypeThermoRaw || t == FileTypeWatersRaw || t == FileTypeAgilentCSV
}

// IsSupported returns true if a parser exists for the type.
func IsSupported(t FileType) bool {
	return t != FileTypeUnsupported && t != ""
}
