// Package rawkit classifies raw mass-spectrometry data files by format
// and provides the surrounding plumbing a raw-data import pipeline needs:
// directory scanning, inbox watching, integrity checksums, and the
// spectrum data-point buffer importers fill.
//
// # File Type Detection
//
// [DetectFileType] inspects a path's filesystem shape, extension, and the
// first kilobyte of content, and classifies it into one of the closed set
// of [FileType] values. An unrecognized file is [FileTypeUnsupported],
// not an error; only I/O failures are returned as errors.
//
//	t, err := rawkit.DetectFileType("sample.mzML")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if rawkit.IsSupported(t) {
//	    // hand off to the parser for t
//	}
//
// Callers that drive work through the toolkit's progress protocol can
// wrap detection in an [Algorithm]:
//
//	alg := rawkit.NewFileTypeDetection("sample.raw")
//	if err := alg.Execute(); err != nil {
//	    log.Fatal(err)
//	}
//	t, _ := alg.Result()
//
// # Directory Scanning
//
// [ScanDirectory] classifies every candidate file under a root, with glob
// filtering, optional recursion, and optional integrity fingerprints:
//
//	results, err := rawkit.ScanDirectory(ctx, "/data/acquisitions",
//	    rawkit.WithPattern("*.{mzML,mzXML,raw}"),
//	    rawkit.WithRecursive(true),
//	    rawkit.WithChecksum(rawkit.ChecksumXXHash),
//	)
//
// # Inbox Watching
//
// [Watcher] observes a drop directory and classifies files as they
// arrive, waiting for each one to stop growing first:
//
//	w, err := rawkit.NewWatcher("/data/inbox")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer w.Close()
//
//	for arrival := range w.Events() {
//	    fmt.Println(arrival.Path, arrival.Type)
//	}
//
// # Error Handling
//
// All I/O failures are wrapped in a [*PathError] carrying the operation
// and path:
//
//	_, err := rawkit.DetectFileType("missing.raw")
//	if rawkit.IsNotExist(err) {
//	    // path does not exist
//	}
//
// # Configuration
//
// Pipeline settings load from RAWKIT_-prefixed environment variables via
// [GetConfig]; see [Config] for the available keys.
package rawkit
