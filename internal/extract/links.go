package extract

var assessmentLinks = cascade{
	newRule(`(?i)(https?://[^\s]+(?:hackerrank|codility|coderpad|leetcode|qualified|devskiller|coderbyte|testgorilla|vervoe|adaface|mettl|imocha|karat)[^\s]*)`, group),
	newRule(`(?i)(https?://[^\s]*(?:assessment|challenge|test|quiz|exercise)[^\s]*)`, group),
}
