/*
 * EBCDIC code page tables.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package codepage

// EBCDIC to Unicode translation tables. Every code page here maps onto
// ISO-8859-1 one to one, so the rune is also the Latin-1 byte.

// IBM CCSID 037, USA/Canada.
var cp037 = [256]rune{
	/*      x0    x1    x2    x3    x4    x5    x6    x7    x8    x9    xA    xB    xC    xD    xE    xF */
	/* 0x */ 0x00, 0x01, 0x02, 0x03, 0x9C, 0x09, 0x86, 0x7F, 0x97, 0x8D, 0x8E, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F,
	/* 1x */ 0x10, 0x11, 0x12, 0x13, 0x9D, 0x85, 0x08, 0x87, 0x18, 0x19, 0x92, 0x8F, 0x1C, 0x1D, 0x1E, 0x1F,
	/* 2x */ 0x80, 0x81, 0x82, 0x83, 0x84, 0x0A, 0x17, 0x1B, 0x88, 0x89, 0x8A, 0x8B, 0x8C, 0x05, 0x06, 0x07,
	/* 3x */ 0x90, 0x91, 0x16, 0x93, 0x94, 0x95, 0x96, 0x04, 0x98, 0x99, 0x9A, 0x9B, 0x14, 0x15, 0x9E, 0x1A,
	/* 4x */ 0x20, 0xA0, 0xE2, 0xE4, 0xE0, 0xE1, 0xE3, 0xE5, 0xE7, 0xF1, 0xA2, 0x2E, 0x3C, 0x28, 0x2B, 0x7C, // . . â ä à á ã å ç ñ ¢ . < ( + |
	/* 5x */ 0x26, 0xE9, 0xEA, 0xEB, 0xE8, 0xED, 0xEE, 0xEF, 0xEC, 0xDF, 0x21, 0x24, 0x2A, 0x29, 0x3B, 0xAC, // & é ê ë è í î ï ì ß ! $ * ) ; ¬
	/* 6x */ 0x2D, 0x2F, 0xC2, 0xC4, 0xC0, 0xC1, 0xC3, 0xC5, 0xC7, 0xD1, 0xA6, 0x2C, 0x25, 0x5F, 0x3E, 0x3F, // - / Â Ä À Á Ã Å Ç Ñ ¦ , % _ > ?
	/* 7x */ 0xF8, 0xC9, 0xCA, 0xCB, 0xC8, 0xCD, 0xCE, 0xCF, 0xCC, 0x60, 0x3A, 0x23, 0x40, 0x27, 0x3D, 0x22, // ø É Ê Ë È Í Î Ï Ì ` : # @ ' = "
	/* 8x */ 0xD8, 0x61, 0x62, 0x63, 0x64, 0x65, 0x66, 0x67, 0x68, 0x69, 0xAB, 0xBB, 0xF0, 0xFD, 0xFE, 0xB1, // Ø a b c d e f g h i « » ð ý þ ±
	/* 9x */ 0xB0, 0x6A, 0x6B, 0x6C, 0x6D, 0x6E, 0x6F, 0x70, 0x71, 0x72, 0xAA, 0xBA, 0xE6, 0xB8, 0xC6, 0xA4, // ° j k l m n o p q r ª º æ ¸ Æ ¤
	/* Ax */ 0xB5, 0x7E, 0x73, 0x74, 0x75, 0x76, 0x77, 0x78, 0x79, 0x7A, 0xA1, 0xBF, 0xD0, 0xDD, 0xDE, 0xAE, // µ ~ s t u v w x y z ¡ ¿ Ð Ý Þ ®
	/* Bx */ 0x5E, 0xA3, 0xA5, 0xB7, 0xA9, 0xA7, 0xB6, 0xBC, 0xBD, 0xBE, 0x5B, 0x5D, 0xAF, 0xA8, 0xB4, 0xD7, // ^ £ ¥ · © § ¶ ¼ ½ ¾ [ ] ¯ ¨ ´ ×
	/* Cx */ 0x7B, 0x41, 0x42, 0x43, 0x44, 0x45, 0x46, 0x47, 0x48, 0x49, 0xAD, 0xF4, 0xF6, 0xF2, 0xF3, 0xF5, // { A B C D E F G H I . ô ö ò ó õ
	/* Dx */ 0x7D, 0x4A, 0x4B, 0x4C, 0x4D, 0x4E, 0x4F, 0x50, 0x51, 0x52, 0xB9, 0xFB, 0xFC, 0xF9, 0xFA, 0xFF, // } J K L M N O P Q R ¹ û ü ù ú ÿ
	/* Ex */ 0x5C, 0xF7, 0x53, 0x54, 0x55, 0x56, 0x57, 0x58, 0x59, 0x5A, 0xB2, 0xD4, 0xD6, 0xD2, 0xD3, 0xD5, // \ ÷ S T U V W X Y Z ² Ô Ö Ò Ó Õ
	/* Fx */ 0x30, 0x31, 0x32, 0x33, 0x34, 0x35, 0x36, 0x37, 0x38, 0x39, 0xB3, 0xDB, 0xDC, 0xD9, 0xDA, 0x9F, // 0 1 2 3 4 5 6 7 8 9 ³ Û Ü Ù Ú .
}

// IBM CCSID 273, Germany/Austria.
var cp273 = [256]rune{
	/*      x0    x1    x2    x3    x4    x5    x6    x7    x8    x9    xA    xB    xC    xD    xE    xF */
	/* 0x */ 0x00, 0x01, 0x02, 0x03, 0x9C, 0x09, 0x86, 0x7F, 0x97, 0x8D, 0x8E, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F,
	/* 1x */ 0x10, 0x11, 0x12, 0x13, 0x9D, 0x85, 0x08, 0x87, 0x18, 0x19, 0x92, 0x8F, 0x1C, 0x1D, 0x1E, 0x1F,
	/* 2x */ 0x80, 0x81, 0x82, 0x83, 0x84, 0x0A, 0x17, 0x1B, 0x88, 0x89, 0x8A, 0x8B, 0x8C, 0x05, 0x06, 0x07,
	/* 3x */ 0x90, 0x91, 0x16, 0x93, 0x94, 0x95, 0x96, 0x04, 0x98, 0x99, 0x9A, 0x9B, 0x14, 0x15, 0x9E, 0x1A,
	/* 4x */ 0x20, 0xA0, 0xE2, 0x7B, 0xE0, 0xE1, 0xE3, 0xE5, 0xE7, 0xF1, 0xC4, 0x2E, 0x3C, 0x28, 0x2B, 0x21, // . . â { à á ã å ç ñ Ä . < ( + !
	/* 5x */ 0x26, 0xE9, 0xEA, 0xEB, 0xE8, 0xED, 0xEE, 0xEF, 0xEC, 0x7E, 0xDC, 0x24, 0x2A, 0x29, 0x3B, 0x5E, // & é ê ë è í î ï ì ~ Ü $ * ) ; ^
	/* 6x */ 0x2D, 0x2F, 0xC2, 0x5B, 0xC0, 0xC1, 0xC3, 0xC5, 0xC7, 0xD1, 0xF6, 0x2C, 0x25, 0x5F, 0x3E, 0x3F, // - / Â [ À Á Ã Å Ç Ñ ö , % _ > ?
	/* 7x */ 0xF8, 0xC9, 0xCA, 0xCB, 0xC8, 0xCD, 0xCE, 0xCF, 0xCC, 0x60, 0x3A, 0x23, 0xA7, 0x27, 0x3D, 0x22, // ø É Ê Ë È Í Î Ï Ì ` : # § ' = "
	/* 8x */ 0xD8, 0x61, 0x62, 0x63, 0x64, 0x65, 0x66, 0x67, 0x68, 0x69, 0xAB, 0xBB, 0xF0, 0xFD, 0xFE, 0xB1, // Ø a b c d e f g h i « » ð ý þ ±
	/* 9x */ 0xB0, 0x6A, 0x6B, 0x6C, 0x6D, 0x6E, 0x6F, 0x70, 0x71, 0x72, 0xAA, 0xBA, 0xE6, 0xB8, 0xC6, 0xA4, // ° j k l m n o p q r ª º æ ¸ Æ ¤
	/* Ax */ 0xB5, 0xDF, 0x73, 0x74, 0x75, 0x76, 0x77, 0x78, 0x79, 0x7A, 0xA1, 0xBF, 0xD0, 0xDD, 0xDE, 0xAE, // µ ß s t u v w x y z ¡ ¿ Ð Ý Þ ®
	// BC is kept as U+00AF macron. IBM 273 has U+203E overline there, which is not in Latin-1.
	/* Bx */ 0xA2, 0xA3, 0xA5, 0xB7, 0xA9, 0x40, 0xB6, 0xBC, 0xBD, 0xBE, 0xAC, 0x7C, 0xAF, 0xA8, 0xB4, 0xD7, // ¢ £ ¥ · © @ ¶ ¼ ½ ¾ ¬ | ¯ ¨ ´ ×
	/* Cx */ 0xE4, 0x41, 0x42, 0x43, 0x44, 0x45, 0x46, 0x47, 0x48, 0x49, 0xAD, 0xF4, 0xA6, 0xF2, 0xF3, 0xF5, // ä A B C D E F G H I . ô ¦ ò ó õ
	/* Dx */ 0xFC, 0x4A, 0x4B, 0x4C, 0x4D, 0x4E, 0x4F, 0x50, 0x51, 0x52, 0xB9, 0xFB, 0x7D, 0xF9, 0xFA, 0xFF, // ü J K L M N O P Q R ¹ û } ù ú ÿ
	/* Ex */ 0xD6, 0xF7, 0x53, 0x54, 0x55, 0x56, 0x57, 0x58, 0x59, 0x5A, 0xB2, 0xD4, 0x5C, 0xD2, 0xD3, 0xD5, // Ö ÷ S T U V W X Y Z ² Ô \ Ò Ó Õ
	/* Fx */ 0x30, 0x31, 0x32, 0x33, 0x34, 0x35, 0x36, 0x37, 0x38, 0x39, 0xB3, 0xDB, 0x5D, 0xD9, 0xDA, 0x9F, // 0 1 2 3 4 5 6 7 8 9 ³ Û ] Ù Ú .
}

// IBM CCSID 278, Finland/Sweden.
var cp278 = [256]rune{
	/*      x0    x1    x2    x3    x4    x5    x6    x7    x8    x9    xA    xB    xC    xD    xE    xF */
	/* 0x */ 0x00, 0x01, 0x02, 0x03, 0x9C, 0x09, 0x86, 0x7F, 0x97, 0x8D, 0x8E, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F,
	/* 1x */ 0x10, 0x11, 0x12, 0x13, 0x9D, 0x85, 0x08, 0x87, 0x18, 0x19, 0x92, 0x8F, 0x1C, 0x1D, 0x1E, 0x1F,
	/* 2x */ 0x80, 0x81, 0x82, 0x83, 0x84, 0x0A, 0x17, 0x1B, 0x88, 0x89, 0x8A, 0x8B, 0x8C, 0x05, 0x06, 0x07,
	/* 3x */ 0x90, 0x91, 0x16, 0x93, 0x94, 0x95, 0x96, 0x04, 0x98, 0x99, 0x9A, 0x9B, 0x14, 0x15, 0x9E, 0x1A,
	/* 4x */ 0x20, 0xA0, 0xE2, 0x7B, 0xE0, 0xE1, 0xE3, 0x7D, 0xE7, 0xF1, 0xA7, 0x2E, 0x3C, 0x28, 0x2B, 0x21, // . . â { à á ã } ç ñ § . < ( + !
	/* 5x */ 0x26, 0x60, 0xEA, 0xEB, 0xE8, 0xED, 0xEE, 0xEF, 0xEC, 0xDF, 0xA4, 0xC5, 0x2A, 0x29, 0x3B, 0x5E, // & ` ê ë è í î ï ì ß ¤ Å * ) ; ^
	/* 6x */ 0x2D, 0x2F, 0xC2, 0x23, 0xC0, 0xC1, 0xC3, 0x24, 0xC7, 0xD1, 0xF6, 0x2C, 0x25, 0x5F, 0x3E, 0x3F, // - / Â # À Á Ã $ Ç Ñ ö , % _ > ?
	/* 7x */ 0xF8, 0x5C, 0xCA, 0xCB, 0xC8, 0xCD, 0xCE, 0xCF, 0xCC, 0xE9, 0x3A, 0xC4, 0xD6, 0x27, 0x3D, 0x22, // ø \ Ê Ë È Í Î Ï Ì é : Ä Ö ' = "
	/* 8x */ 0xD8, 0x61, 0x62, 0x63, 0x64, 0x65, 0x66, 0x67, 0x68, 0x69, 0xAB, 0xBB, 0xF0, 0xFD, 0xFE, 0xB1, // Ø a b c d e f g h i « » ð ý þ ±
	/* 9x */ 0xB0, 0x6A, 0x6B, 0x6C, 0x6D, 0x6E, 0x6F, 0x70, 0x71, 0x72, 0xAA, 0xBA, 0xE6, 0xB8, 0xC6, 0x5D, // ° j k l m n o p q r ª º æ ¸ Æ ]
	/* Ax */ 0xB5, 0xFC, 0x73, 0x74, 0x75, 0x76, 0x77, 0x78, 0x79, 0x7A, 0xA1, 0xBF, 0xD0, 0xDD, 0xDE, 0xAE, // µ ü s t u v w x y z ¡ ¿ Ð Ý Þ ®
	/* Bx */ 0xA2, 0xA3, 0xA5, 0xB7, 0xA9, 0x5B, 0xB6, 0xBC, 0xBD, 0xBE, 0xAC, 0x7C, 0xAF, 0xA8, 0xB4, 0xD7, // ¢ £ ¥ · © [ ¶ ¼ ½ ¾ ¬ | ¯ ¨ ´ ×
	/* Cx */ 0xE4, 0x41, 0x42, 0x43, 0x44, 0x45, 0x46, 0x47, 0x48, 0x49, 0xAD, 0xF4, 0xA6, 0xF2, 0xF3, 0xF5, // ä A B C D E F G H I . ô ¦ ò ó õ
	/* Dx */ 0xE5, 0x4A, 0x4B, 0x4C, 0x4D, 0x4E, 0x4F, 0x50, 0x51, 0x52, 0xB9, 0xFB, 0x7E, 0xF9, 0xFA, 0xFF, // å J K L M N O P Q R ¹ û ~ ù ú ÿ
	/* Ex */ 0xC9, 0xF7, 0x53, 0x54, 0x55, 0x56, 0x57, 0x58, 0x59, 0x5A, 0xB2, 0xD4, 0x40, 0xD2, 0xD3, 0xD5, // É ÷ S T U V W X Y Z ² Ô @ Ò Ó Õ
	/* Fx */ 0x30, 0x31, 0x32, 0x33, 0x34, 0x35, 0x36, 0x37, 0x38, 0x39, 0xB3, 0xDB, 0xDC, 0xD9, 0xDA, 0x9F, // 0 1 2 3 4 5 6 7 8 9 ³ Û Ü Ù Ú .
}
