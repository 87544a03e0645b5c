package classify

// binaryExtensions short-circuit to a skip without opening the file
var binaryExtensions = map[string]struct{}{
	// images
	".png": {}, ".jpg": {}, ".jpeg": {}, ".gif": {}, ".webp": {}, ".psd": {}, ".ico": {},
	".bmp": {}, ".tif": {}, ".tiff": {}, ".heic": {},
	// archives
	".zip": {}, ".tar": {}, ".gz": {}, ".tgz": {}, ".bz2": {}, ".xz": {}, ".7z": {}, ".rar": {},
	".jar": {}, ".war": {}, ".whl": {},
	// documents and fonts
	".pdf": {}, ".ttf": {}, ".otf": {}, ".woff": {}, ".woff2": {}, ".eot": {},
	// media
	".mp3": {}, ".mp4": {}, ".mov": {}, ".avi": {}, ".mkv": {}, ".wav": {}, ".flac": {}, ".ogg": {},
	// compiled objects
	".exe": {}, ".dll": {}, ".so": {}, ".dylib": {}, ".class": {}, ".o": {}, ".a": {},
	".pyc": {}, ".pyo": {}, ".wasm": {}, ".bin": {},
}

// textExtensions skip content sniffing; size cap and decoding still apply
var textExtensions = map[string]struct{}{
	".txt": {}, ".md": {}, ".rst": {}, ".csv": {}, ".log": {},
	".go": {}, ".py": {}, ".rb": {}, ".js": {}, ".jsx": {}, ".ts": {}, ".tsx": {}, ".mjs": {}, ".cjs": {},
	".java": {}, ".kt": {}, ".scala": {}, ".c": {}, ".h": {}, ".cpp": {}, ".hpp": {}, ".cs": {},
	".rs": {}, ".php": {}, ".swift": {}, ".sh": {}, ".bash": {}, ".zsh": {}, ".ps1": {},
	".html": {}, ".htm": {}, ".css": {}, ".scss": {}, ".sql": {},
	".json": {}, ".yaml": {}, ".yml": {}, ".toml": {}, ".ini": {}, ".cfg": {}, ".conf": {},
	".xml": {}, ".properties": {}, ".env": {}, ".tf": {}, ".tfvars": {}, ".pem": {}, ".key": {},
}

// IsBinaryExtension reports whether ext (lower-case, with dot) is a known binary type
func IsBinaryExtension(ext string) bool {
	_, ok := binaryExtensions[ext]
	return ok
}

// IsTextExtension reports whether ext (lower-case, with dot) is a known text type
func IsTextExtension(ext string) bool {
	_, ok := textExtensions[ext]
	return ok
}
