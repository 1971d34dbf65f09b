// Package config manages FuzzyPlus user configuration.
//
// Two concerns live here:
//
//   - The registry: a YAML file holding the options the companion app has
//     set (currently only BeforeText) and the companion endpoint
//     preferences.
//   - Configuration messages: key/value dictionaries delivered by the
//     companion app, validated by ParseMessage into an Update.
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/fuzzyplus/config.yaml or $HOME/.config/fuzzyplus/config.yaml
//   - macOS: $HOME/.config/fuzzyplus/config.yaml
//   - Windows: %LOCALAPPDATA%\fuzzyplus\config.yaml
//
// # Usage Example
//
//	path, _ := config.ResolvePath("")
//	registry, err := config.Load(path)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	update, err := config.ParseMessage(map[string]any{"BeforeText": "It's"})
//	if err != nil {
//	    // malformed: nothing is applied
//	}
//	if registry.Apply(update, time.Now()) {
//	    _ = registry.Save(path)
//	}
//
// # Thread Safety
//
// Load and Save are serialised by a package mutex and Save writes through a
// temporary file and rename, so a crash never leaves a truncated file.
// Registry values themselves are not synchronised.
package config
