package models

// Alphabet for generated console tokens.
var Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// SessionTokenLength gives ~165 bits of entropy over Alphabet.
const SessionTokenLength = 32
