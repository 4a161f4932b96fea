package constant

// AsciiArtLogo is the application's ASCII art banner.
const AsciiArtLogo = `
               _       _       _             _
   _ __  _ __ (_)_ __ | |_ ___| |_ __ _  ___| | __
  | '_ \| '__|| | '_ \| __/ __| __/ _` + "`" + ` |/ __| |/ /
  | |_) | |   | | | | | |_\__ \ || (_| | (__|   <
  | .__/|_|   |_|_| |_|\__|___/\__\__,_|\___|_|\_\
  |_|`
