package assets

// Default asset names.
const (
	DefaultStyleName   = "gnu-c"
	NavbarTemplateName = "navbar"
	DefaultIconName    = "favicon"
)

// AssetLoader defines the contract for loading bundled assets.
// Implementations may load from embedded assets, filesystem, etc.
type AssetLoader interface {
	// LoadStyle loads a CSS stylesheet by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadStyle(name string) (string, error)

	// LoadTemplate loads an HTML template by name (without .html extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplate(name string) (string, error)

	// LoadIcon loads an SVG icon by name (without .svg extension).
	// Returns ErrIconNotFound if the icon doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadIcon(name string) (string, error)
}
