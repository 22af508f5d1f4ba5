package session

const asciiBanner = `
██████╗ ███████╗███████╗███████╗███╗   ██╗██████╗ ██╗ ██████╗ 
██╔══██╗██╔════╝██╔════╝██╔════╝████╗  ██║██╔══██╗██║██╔═══██╗
██║  ██║█████╗  █████╗  █████╗  ██╔██╗ ██║██║  ██║██║██║   ██║
██║  ██║██╔══╝  ██╔══╝  ██╔══╝  ██║╚██╗██║██║  ██║██║██║▄▄ ██║
██████╔╝███████╗██║     ███████╗██║ ╚████║██████╔╝██║╚██████╔╝
╚═════╝ ╚══════╝╚═╝     ╚══════╝╚═╝  ╚═══╝╚═════╝ ╚═╝ ╚══▀▀═╝ 
`

// Welcome is the first response of every new session.
const Welcome = asciiBanner + "\nWelcome to DefendIQ Command Line Interface. Type 'help' for commands."
