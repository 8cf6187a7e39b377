package cli

// asciiLogo is printed by the version command. Kept free of backticks so
// it can live in a raw string literal.
const asciiLogo = `
  __  __ ____  _____ _____ _   _  ____ _____
 |  \/  |  _ \|  ___| ____| \ | |/ ___| ____|
 | |\/| | | | | |_  |  _| |  \| | |   |  _|
 | |  | | |_| |  _| | |___| |\  | |___| |___
 |_|  |_|____/|_|   |_____|_| \_|\____|_____|`
